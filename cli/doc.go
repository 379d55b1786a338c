// Package cli turns the pgsolve command line into a Request.
//
//	pgsolve -pg <file> -input|-random|-priority|-successor|-selfloop
//	pgsolve -ex <directory>
//
// No other flags exist. Anything else prints usage and asks the caller to
// exit with status 0.
package cli
