// Package task manages background job queuing and processing.
// It provides asynchronous execution for work that must not block HTTP
// request handling, such as writing generation records to the store after
// the response has been sent. The queue is in-memory and best-effort.
package task
