package main

import (
	_ "aoc2023/internal/day01"
	_ "aoc2023/internal/day02"
	_ "aoc2023/internal/day03"
	_ "aoc2023/internal/day04"
	_ "aoc2023/internal/day05"
	_ "aoc2023/internal/day06"
	_ "aoc2023/internal/day07"
	_ "aoc2023/internal/day08"
	_ "aoc2023/internal/day09"
	_ "aoc2023/internal/day10"
)
