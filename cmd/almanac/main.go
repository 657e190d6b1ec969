// Command almanac reads a seed almanac and prints the lowest reachable
// location for the listed seeds (part one) and for the listed seed ranges
// (part two).
package main

import (
	"os"

	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()

	if err := Execute(); err != nil {
		klog.ErrorS(err, "almanac failed")
		klog.Flush()
		os.Exit(1)
	}
}
