// Package kvfifo defines the shared leaf types used across the kvfifo codebase:
// UUID position handles, key/value pair tuples, copier hooks, and the common
// error codes. The container itself lives in the queue subpackage, built on top
// of the btree (key index) and seqlist (sequence store) subpackages.
// It is a foundational package that the other components build upon.
package kvfifo
