package ktest

import "sync"

type _Scope struct {
	wg sync.WaitGroup
}

// Scope groups test goroutines so a test can wait on all of them at
// once. Failures inside a scoped goroutine surface through testify as
// usual.
func Scope() *_Scope {
	return new(_Scope)
}

func (s *_Scope) Go(cb func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		cb()
	}()
}

func (s *_Scope) Wait() {
	s.wg.Wait()
}
