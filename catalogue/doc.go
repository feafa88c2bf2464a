/*
Package catalogue stores a transit network snapshot: stops, buses and the
directed road distances between stops.

The catalogue is populated once (stops, then distances, then buses) and is
read-only afterwards. Stops and buses are addressed by small integer handles
(StopID, BusID) that stay valid for the catalogue's lifetime; nothing ever
relocates or removes an inserted element.

# Basic Usage

	cat := catalogue.New()
	cat.AddStop("A", geo.Coordinates{Lat: 0, Lng: 0})
	cat.AddStop("B", geo.Coordinates{Lat: 0, Lng: 1})
	cat.AddDistance("A", "B", 1000)

	a, _ := cat.FindStop("A")
	b, _ := cat.FindStop("B")
	cat.AddBus("1", []catalogue.StopID{a.ID, b.ID}, false)

	info := cat.BusInfo("1") // StopCount 3, UniqueStopCount 2, RouteLength 2000

# Duplicates

Re-adding a stop, bus or distance pair that already exists is a no-op: the
first insertion wins and nothing is reported.

# Distances

DistanceBetween looks up the ordered pair first, then the reversed pair, and
falls back to zero when neither was recorded.
*/
package catalogue
