// Package timing measures the stabilised average running time of an
// operation.
//
// A Harness calls the operation once untimed, then times it repeatedly
// until at least MinTrials trials have run and the running average moved
// by no more than Slack seconds in the last trial.
package timing
