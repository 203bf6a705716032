// Package concurrency 동시성 제어 유틸리티를 제공합니다.
package concurrency

import "sync"

// KeyedMutex 키마다 독립된 잠금을 제공합니다. 서로 다른 키의 작업은 병렬로 진행됩니다.
// 잠금을 보유하거나 기다리는 고루틴이 없는 키는 즉시 정리됩니다.
type KeyedMutex[K comparable] struct {
	mu    sync.Mutex
	locks map[K]*keyedEntry
}

type keyedEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedMutex 새 KeyedMutex를 생성합니다.
func NewKeyedMutex[K comparable]() *KeyedMutex[K] {
	return &KeyedMutex[K]{locks: make(map[K]*keyedEntry)}
}

// acquire key의 엔트리를 찾거나 만들고 참조 수를 늘립니다. km.mu를 보유한 상태에서 호출합니다.
func (km *KeyedMutex[K]) acquire(key K) *keyedEntry {
	e, ok := km.locks[key]
	if !ok {
		e = &keyedEntry{}
		km.locks[key] = e
	}
	e.refs++
	return e
}

// release 참조 수를 줄이고 더 이상 참조가 없으면 엔트리를 제거합니다. km.mu를 보유한 상태에서 호출합니다.
func (km *KeyedMutex[K]) release(key K, e *keyedEntry) {
	e.refs--
	if e.refs <= 0 {
		delete(km.locks, key)
	}
}

// Lock key의 잠금을 획득할 때까지 기다립니다.
func (km *KeyedMutex[K]) Lock(key K) {
	km.mu.Lock()
	e := km.acquire(key)
	km.mu.Unlock()

	e.mu.Lock()
}

// TryLock 기다리지 않고 key의 잠금을 시도합니다.
// true를 반환한 경우에만 Unlock을 호출해야 합니다.
func (km *KeyedMutex[K]) TryLock(key K) bool {
	km.mu.Lock()
	defer km.mu.Unlock()

	e := km.acquire(key)
	if e.mu.TryLock() {
		return true
	}
	km.release(key, e)
	return false
}

// Unlock key의 잠금을 해제합니다. 잠기지 않은 키를 해제하면 패닉이 발생합니다.
func (km *KeyedMutex[K]) Unlock(key K) {
	km.mu.Lock()
	defer km.mu.Unlock()

	e, ok := km.locks[key]
	if !ok {
		panic("concurrency: 잠기지 않은 키의 잠금 해제 시도")
	}
	e.mu.Unlock()
	km.release(key, e)
}

// WithLock key의 잠금을 보유한 채 fn을 실행합니다.
func (km *KeyedMutex[K]) WithLock(key K, fn func() error) error {
	km.Lock(key)
	defer km.Unlock(key)

	return fn()
}

// Len 잠금을 보유하거나 기다리는 고루틴이 있는 키의 개수를 반환합니다.
func (km *KeyedMutex[K]) Len() int {
	km.mu.Lock()
	defer km.mu.Unlock()

	return len(km.locks)
}
