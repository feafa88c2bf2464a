/*
Package gtfs populates a catalogue from a GTFS static feed.

This package is data-source agnostic - it accepts an io.ReaderAt over the zip
(or a path for CLI usage) and does NOT handle HTTP downloads.

# Basic Usage

	cat := catalogue.New()
	stats, err := gtfs.LoadZipFile("feed.zip", cat, gtfs.Options{})
	if err != nil {
	    log.Fatal(err)
	}

# Mapping

  - stops.txt: one catalogue stop per row, named by stop_name (or stop_id
    with Options.NameBy = "stop_id"). Duplicate names keep the first row.
  - routes.txt, trips.txt, stop_times.txt: one bus per route, named by
    route_short_name (route_id when empty). The stop sequence is taken from
    the route's longest trip (ties go to the lowest trip_id). A trip whose
    first and last stops coincide becomes a circular bus; any other trip is
    taken as the outbound leg of a line bus.
  - Road distances are the rounded great-circle distances between
    consecutive stops of each chosen trip.

Stop times that reference unknown stops are skipped and counted in Stats.
*/
package gtfs
