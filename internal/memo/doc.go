// Package memo provides a generic get-or-insert-compute map for values that
// are expensive to build and live as long as their owner.
//
// Unlike an LRU cache, a Map never evicts. It is not safe for concurrent use;
// owners serialize access behind their own lock.
package memo
