package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transit-router/catalogue"
	"github.com/theoremus-urban-solutions/transit-router/geo"
)

// Stop naming strategies for Options.NameBy
const (
	NameByStopName = "stop_name"
	NameByStopID   = "stop_id"
)

// ErrNoStops is returned when the feed has no usable stops.txt rows.
var ErrNoStops = errors.New("gtfs: feed contains no stops")

// Options tune how a feed maps onto catalogue names.
type Options struct {
	NameBy string // NameByStopName (default) or NameByStopID
}

// Stats summarises one load.
type Stats struct {
	Stops            int // stops inserted
	Buses            int // buses inserted
	Distances        int // distance pairs inserted
	SkippedStopTimes int // stop_times rows referencing unknown stops
	BadSequences     int // stop_times rows with a non-numeric stop_sequence
}

// LoadZipFile opens a local GTFS zip file and loads it into cat.
func LoadZipFile(path string, cat *catalogue.Catalogue, opts Options) (Stats, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return Stats{}, err
	}
	defer zr.Close()
	return load(&zr.Reader, cat, opts)
}

// LoadZipBytes loads a GTFS zip held in memory into cat.
func LoadZipBytes(data []byte, cat *catalogue.Catalogue, opts Options) (Stats, error) {
	return LoadZip(bytes.NewReader(data), int64(len(data)), cat, opts)
}

// LoadZip loads a GTFS zip of the given size into cat.
func LoadZip(r io.ReaderAt, size int64, cat *catalogue.Catalogue, opts Options) (Stats, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Stats{}, err
	}
	return load(zr, cat, opts)
}

func load(zr *zip.Reader, cat *catalogue.Catalogue, opts Options) (Stats, error) {
	f := newFeedIndex()
	var stats Stats
	// stop_times must be read after stops.txt to detect unknown stops, and
	// zip entry order is not guaranteed.
	var stopTimes *zip.File
	for _, zf := range zr.File {
		switch strings.ToLower(zf.Name) {
		case "stops.txt", "routes.txt", "trips.txt":
			if err := f.consumeCSV(zf, &stats); err != nil {
				return stats, fmt.Errorf("%s: %w", zf.Name, err)
			}
		case "stop_times.txt":
			stopTimes = zf
		}
	}
	if stopTimes != nil {
		if err := f.consumeCSV(stopTimes, &stats); err != nil {
			return stats, fmt.Errorf("%s: %w", stopTimes.Name, err)
		}
	}
	if len(f.stopOrder) == 0 {
		return stats, ErrNoStops
	}
	f.populate(cat, opts, &stats)
	return stats, nil
}

func (f *feedIndex) consumeCSV(zf *zip.File, stats *Stats) error {
	r, err := zf.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return nil
	}
	head := rec[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	field := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	switch strings.ToLower(zf.Name) {
	case "stops.txt":
		sID := idx("stop_id")
		sN := idx("stop_name")
		sLat := idx("stop_lat")
		sLon := idx("stop_lon")
		if sID < 0 || sLat < 0 || sLon < 0 {
			return fmt.Errorf("missing stop_id, stop_lat or stop_lon column")
		}
		for _, row := range rec[1:] {
			id := field(row, sID)
			lat, err1 := strconv.ParseFloat(field(row, sLat), 64)
			lon, err2 := strconv.ParseFloat(field(row, sLon), 64)
			if id == "" || err1 != nil || err2 != nil {
				continue
			}
			if _, ok := f.stopCoord[id]; !ok {
				f.stopOrder = append(f.stopOrder, id)
			}
			f.stopNames[id] = field(row, sN)
			f.stopCoord[id] = [2]float64{lat, lon}
		}
	case "routes.txt":
		rID := idx("route_id")
		rSN := idx("route_short_name")
		if rID < 0 {
			return fmt.Errorf("missing route_id column")
		}
		for _, row := range rec[1:] {
			id := field(row, rID)
			if id == "" {
				continue
			}
			name := field(row, rSN)
			if name == "" {
				name = id
			}
			if _, ok := f.routeNames[id]; !ok {
				f.routeOrder = append(f.routeOrder, id)
			}
			f.routeNames[id] = name
		}
	case "trips.txt":
		rID := idx("route_id")
		tID := idx("trip_id")
		if rID < 0 || tID < 0 {
			return fmt.Errorf("missing route_id or trip_id column")
		}
		for _, row := range rec[1:] {
			f.tripToRoute[field(row, tID)] = field(row, rID)
		}
	case "stop_times.txt":
		tID := idx("trip_id")
		sID := idx("stop_id")
		sq := idx("stop_sequence")
		if tID < 0 || sID < 0 || sq < 0 {
			return fmt.Errorf("missing trip_id, stop_id or stop_sequence column")
		}
		type stopAt struct {
			stop string
			seq  int
		}
		tmp := map[string][]stopAt{}
		for _, row := range rec[1:] {
			stop := field(row, sID)
			if _, ok := f.stopCoord[stop]; !ok {
				stats.SkippedStopTimes++
				continue
			}
			seq, err := strconv.Atoi(field(row, sq))
			if err != nil {
				stats.BadSequences++
				continue
			}
			trip := field(row, tID)
			tmp[trip] = append(tmp[trip], stopAt{stop: stop, seq: seq})
		}
		for trip, arr := range tmp {
			sort.SliceStable(arr, func(i, j int) bool { return arr[i].seq < arr[j].seq })
			seqStops := make([]string, 0, len(arr))
			for _, v := range arr {
				seqStops = append(seqStops, v.stop)
			}
			f.tripStopSeq[trip] = seqStops
		}
	}
	return nil
}

// populate feeds the collected rows into the catalogue: stops, then
// distances, then buses.
func (f *feedIndex) populate(cat *catalogue.Catalogue, opts Options, stats *Stats) {
	name := func(stopID string) string {
		if opts.NameBy == NameByStopID || f.stopNames[stopID] == "" {
			return stopID
		}
		return f.stopNames[stopID]
	}

	for _, id := range f.stopOrder {
		c := f.stopCoord[id]
		if cat.AddStop(name(id), geo.Coordinates{Lat: c[0], Lng: c[1]}) {
			stats.Stops++
		}
	}

	trips := f.representativeTrips()
	for _, route := range f.routeOrder {
		seq := f.tripStopSeq[trips[route]]
		for i := 0; i+1 < len(seq); i++ {
			a, b := f.stopCoord[seq[i]], f.stopCoord[seq[i+1]]
			meters := geo.Distance(geo.Coordinates{Lat: a[0], Lng: a[1]}, geo.Coordinates{Lat: b[0], Lng: b[1]})
			if cat.AddDistance(name(seq[i]), name(seq[i+1]), int(math.Round(meters))) {
				stats.Distances++
			}
		}
	}

	for _, route := range f.routeOrder {
		seq := f.tripStopSeq[trips[route]]
		if len(seq) == 0 {
			continue
		}
		ids := make([]catalogue.StopID, 0, len(seq))
		for _, s := range seq {
			stop, _ := cat.FindStop(name(s))
			ids = append(ids, stop.ID)
		}
		circular := len(ids) > 1 && ids[0] == ids[len(ids)-1]
		if cat.AddBus(f.routeNames[route], ids, circular) {
			stats.Buses++
		}
	}
}
