// Package clientip extracts the client address of a request behind reverse
// proxies. Only use it for logging: the headers it reads are client supplied.
package clientip
