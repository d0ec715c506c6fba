package domain

// DaysInMonth returns the day count for month in the simplified calendar.
// February is always 28 days. Values outside 1..12 fall back to 30; the
// generator never produces them.
func DaysInMonth(month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		return 28
	default:
		return 30
	}
}

// GenerateDate draws year, month and day, in that order.
func GenerateDate(rng Rand) Date {
	year := rng.IntRange(MinYear, MaxYear)
	month := rng.IntRange(1, 12)
	day := rng.IntRange(1, DaysInMonth(month))
	return Date{Year: year, Month: month, Day: day}
}

// GenerateRecord draws station, temperature, pressure and then the date.
func GenerateRecord(rng Rand) WeatherRecord {
	stations := Stations()
	station := stations[rng.IntRange(0, len(stations)-1)]

	// Sampled in tenths, then scaled.
	temperature := float64(rng.IntRange(MinTemperatureTenths, MaxTemperatureTenths)) / 10
	pressure := float64(rng.IntRange(MinPressureTenths, MaxPressureTenths)) / 10

	return WeatherRecord{
		Date:        GenerateDate(rng),
		Station:     station,
		Temperature: temperature,
		Pressure:    pressure,
	}
}

// GenerateDataset draws the record count and then that many independent
// records in generation order. Duplicates are kept.
func GenerateDataset(rng Rand) []WeatherRecord {
	n := rng.IntRange(MinRecords, MaxRecords)
	records := make([]WeatherRecord, 0, n)
	for range n {
		records = append(records, GenerateRecord(rng))
	}
	return records
}
