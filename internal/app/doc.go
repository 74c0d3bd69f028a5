// Package app provides application services that implement the inbound
// service ports by coordinating domain rules with the repository ports.
//
// Every service operation issues at most one read followed by at most one
// write. Operations that can fail with not-found perform the lookup before
// any write, so a missing record never causes a partial mutation.
package app
