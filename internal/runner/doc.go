// Package runner launches independent jobs with a fixed stagger and collects one
// Outcome per job, in launch order, without aborting the batch on failure.
package runner
