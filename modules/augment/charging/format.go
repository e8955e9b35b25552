package charging

import "strings"

const noStationsText = "По данному участку маршрута зарядных станций не найдено."

// formatStations renders a station list as a user-facing text block.
func formatStations(stations []station) string {
	if len(stations) == 0 {
		return noStationsText
	}
	blocks := make([]string, 0, len(stations))
	for _, s := range stations {
		name := s.Name
		if name == "" {
			name = "Без названия"
		}
		connectors := strings.Join(s.Connector, ", ")
		var b strings.Builder
		b.WriteString("⚡ " + name + "\n")
		b.WriteString("Адрес: " + s.Address + "\n")
		b.WriteString("Типы разъёмов: " + connectors)
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

// formatRoute renders the full supplement covering both ends of the route.
func formatRoute(start, destination string, startStations, endStations []station) string {
	var b strings.Builder
	b.WriteString("Зарядные станции на маршруте:\n\n")
	b.WriteString("В начале маршрута (" + start + "):\n")
	b.WriteString(formatStations(startStations))
	b.WriteString("\n\n")
	b.WriteString("В конце маршрута (" + destination + "):\n")
	b.WriteString(formatStations(endStations))
	return b.String()
}
