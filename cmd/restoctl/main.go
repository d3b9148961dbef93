// Command restoctl is a command-line client for the restaurant-admin API.
//
// The base URL and timeout come from API_BASE_URL and API_TIMEOUT unless
// overridden by --api and --timeout. Pass --token, or --email and
// --password to log in first.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
