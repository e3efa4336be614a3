// Command sweepctl plans savings-to-checking transfers from a local snapshot file.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
