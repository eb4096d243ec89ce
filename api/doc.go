// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts of the threadpool library: the abstract Pool handle, the
// task callable forms and their directives, and the Control introspection
// interface. Implementations live in internal/concurrency and are constructed
// through the pool package.
package api
