// Package experiment is the batch harness: it solves every game file of a
// directory with a set of strategies and reports, per file and strategy,
// the winner of the lowest-id vertex and the number of lift applications.
//
// Strategies of one file run concurrently (errgroup, optionally limited by
// Config.Workers), each under its own Config.Timeout deadline that starts
// when its solve starts. The solver checks its
// context before every vertex, so a timed-out strategy returns promptly
// instead of being abandoned. Timed-out strategies are skipped for the
// remaining files.
//
// Output is CSV with the header file,strategy,winner,iterations. Solver
// statistics are exported through Metrics and can be dumped with
// WriteTextfile.
package experiment
