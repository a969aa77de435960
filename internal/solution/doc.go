// Package solution holds the registry of daily puzzle solvers.
//
// Every day package registers itself from init():
//
//	func init() {
//		solution.Register(solution.Solution{Day: 5, Part1: part1, Part2: part2})
//	}
//
// and the CLI blank-imports the day packages it ships.
package solution
