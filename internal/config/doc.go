// Package config provides the YAML configuration of the aoc command.
//
// # Schema Overview
//
//	input_dir: inputs            # where puzzle inputs live
//	input_pattern: day%02d.txt   # file name for a day, fmt verb for the day number
//	workers: 4                   # days solved in parallel, 0 means GOMAXPROCS
//	timeout: 30s                 # per-part time limit, empty means none
//	log_level: info              # debug, info, warn or error
//	answers:                     # known answers, checked by "aoc check"
//	  5:
//	    part1: 535088217
//
// A missing field takes its value from DefaultConfig.
package config
