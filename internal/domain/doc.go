// Package domain models synthetic weather station observations.
//
// # Records
//
// A [WeatherRecord] is a single observation: a calendar date, one of five
// fixed stations, a temperature in degrees Celsius and an atmospheric
// pressure in hectopascals. Records are built fully formed by
// [GenerateRecord] and never mutated afterwards.
//
// # Value Ranges
//
//	Date:        2020-01-01 .. 2025-12-31, rendered as YYYY-MM-DD
//	Station:     StationA | StationB | StationC | StationD | StationE
//	Temperature: -10.0 .. 40.0 °C, one decimal digit
//	Pressure:    980.0 .. 1050.0 hPa, one decimal digit
//
// Fractional values are sampled in tenths: an integer is drawn from a range
// ten times wider than the target (e.g. -100..400 for temperature) and then
// divided by 10. This yields uniformly distributed one-decimal values with
// no floating-point sampling bias.
//
// Day-of-month uses a simplified calendar where February always has 28 days.
// 2024-02-29 is therefore never generated even though 2024 is a leap year.
// See [DaysInMonth].
//
// # Randomness
//
// Every generator takes a [Rand] explicitly. There is no package-level
// generator, so a fixed sequence of draws always reproduces the same dataset
// byte for byte. Draws are consumed in a fixed order:
//
//	dataset:  N in [10, 20], then N records
//	record:   station index, temperature tenths, pressure tenths, date
//	date:     year, month, day
//
// # CSV Format
//
//	Date,Station,Temperature,Pressure
//	2023-07-14,StationC,21.5,1013.2
//
// No field can contain a comma, so lines are written without quoting.
// [ReadReadings] streams the same shape back for analysis and tolerates
// malformed rows by skipping them.
package domain
