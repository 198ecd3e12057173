// Command lvrand draws from, checkpoints and compares deterministic random
// engines. It is the command-line face of the random package's text format:
// checkpoints written here can be checked into fixtures and replayed anywhere.
//
// Usage:
//
//	lvrand draw   [-seed N] [-n K] [-bound B] [-real] [-state FILE]
//	lvrand save   -seed N [-skip K] -out FILE
//	lvrand verify -a FILE -b FILE
//	lvrand bench  [-seed N] [-n K]
//
// FILE extensions .sz and .lz4 select compressed checkpoints.
package main

import "os"

func main() { os.Exit(run(os.Args[1:], os.Stdout, os.Stderr)) }
