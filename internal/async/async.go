package async

import (
	"sync"

	"github.com/sirupsen/logrus"
)

func pcall(fn func()) {
	defer func() {
		if err := recover(); err != nil {
			logrus.Errorf("async/pcall: Error=%v", err)
		}
	}()

	fn()
}

// Run calls fn in a new goroutine, a panic in fn is logged and swallowed
func Run(fn func()) {
	go pcall(fn)
}

// Wait calls every fn in its own goroutine and blocks until all of them
// returned or panicked
func Wait(fns ...func()) {
	var wg sync.WaitGroup
	wg.Add(len(fns))
	for _, fn := range fns {
		fn := fn
		Run(func() {
			defer wg.Done()
			fn()
		})
	}
	wg.Wait()
}
