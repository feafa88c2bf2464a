package gtfs

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transit-router/catalogue"
)

// createGTFSZip builds a GTFS zip from file name -> content pairs
func createGTFSZip(t *testing.T, files map[string]string) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	for name, content := range files {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
		_, _ = f.Write([]byte(content))
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return buf.Bytes()
}

func sampleFeed() map[string]string {
	return map[string]string{
		"agency.txt": "agency_id,agency_name,agency_url,agency_timezone\nTEST,Test Agency,http://test.com,Europe/Sofia\n",
		"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\n" +
			"S1,Alpha,0,0\n" +
			"S2,Beta,0,0.01\n" +
			"S3,Gamma,0,0.02\n" +
			"S4,Alpha,1,1\n" +
			"S5,Lonely,5,5\n" +
			"BAD,Broken,north,east\n",
		"routes.txt": "route_id,agency_id,route_short_name,route_long_name,route_type\n" +
			"R1,TEST,10,Line ten,3\n" +
			"R2,TEST,,Loop,3\n" +
			"R3,TEST,99,No trips,3\n",
		"trips.txt": "route_id,service_id,trip_id\nR1,S,T1\nR1,S,T2\nR2,S,T3\n",
		"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
			"T1,08:10:00,08:10:00,S3,3\n" +
			"T1,08:00:00,08:00:00,S1,1\n" +
			"T1,08:05:00,08:05:00,S2,2\n" +
			"T2,09:00:00,09:00:00,S1,1\n" +
			"T2,09:05:00,09:05:00,S2,2\n" +
			"T3,10:00:00,10:00:00,S3,1\n" +
			"T3,10:05:00,10:05:00,S1,2\n" +
			"T3,10:07:00,10:07:00,S9,3\n" +
			"T3,10:10:00,10:10:00,S3,4\n",
	}
}

func stopNames(cat *catalogue.Catalogue, ids []catalogue.StopID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = cat.Stop(id).Name
	}
	return out
}

func TestLoadZipBytes(t *testing.T) {
	cat := catalogue.New()
	stats, err := LoadZipBytes(createGTFSZip(t, sampleFeed()), cat, Options{})
	require.NoError(t, err)

	assert.Equal(t, Stats{Stops: 4, Buses: 2, Distances: 4, SkippedStopTimes: 1}, stats)

	line, ok := cat.FindBus("10")
	require.True(t, ok, "route short name should name the bus")
	assert.False(t, line.Circular)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, stopNames(cat, line.Stops))

	loop, ok := cat.FindBus("R2")
	require.True(t, ok, "route_id should be used when the short name is empty")
	assert.True(t, loop.Circular)
	assert.Equal(t, []string{"Gamma", "Alpha", "Gamma"}, stopNames(cat, loop.Stops))

	_, ok = cat.FindBus("99")
	assert.False(t, ok, "routes without trips are not buses")

	alpha, ok := cat.FindStop("Alpha")
	require.True(t, ok)
	assert.Equal(t, 0.0, alpha.Coordinates.Lat, "first row wins for duplicate names")

	info := cat.BusInfo("10")
	assert.Equal(t, 5, info.StopCount)
	assert.Equal(t, 3, info.UniqueStopCount)
	assert.Equal(t, 4*1112, info.RouteLength)
	assert.InDelta(t, 1.0, info.Curvature, 1e-3)
}

func TestLoadZip_BadStopSequence(t *testing.T) {
	feed := sampleFeed()
	feed["stop_times.txt"] = "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
		"T1,08:00:00,08:00:00,S1,1\n" +
		"T1,08:05:00,08:05:00,S2,2\n" +
		"T1,08:10:00,08:10:00,S3,3\n" +
		"T1,08:12:00,08:12:00,S5,x\n" +
		"T1,08:15:00,08:15:00,S4,\n"

	cat := catalogue.New()
	stats, err := LoadZipBytes(createGTFSZip(t, feed), cat, Options{NameBy: NameByStopID})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.BadSequences)
	assert.Zero(t, stats.SkippedStopTimes)

	line, ok := cat.FindBus("10")
	require.True(t, ok)
	assert.Equal(t, []string{"S1", "S2", "S3"}, stopNames(cat, line.Stops), "rows without a sequence must not be reordered to the front")
}

func TestLoadZip_NameByStopID(t *testing.T) {
	cat := catalogue.New()
	data := createGTFSZip(t, sampleFeed())
	stats, err := LoadZip(bytes.NewReader(data), int64(len(data)), cat, Options{NameBy: NameByStopID})
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Stops)
	assert.Equal(t, []string{"10", "R2"}, cat.BusesServing(mustStop(t, cat, "S3")))
	assert.Empty(t, cat.BusesServing(mustStop(t, cat, "S4")))
}

func mustStop(t *testing.T, cat *catalogue.Catalogue, name string) catalogue.StopID {
	t.Helper()
	s, ok := cat.FindStop(name)
	require.True(t, ok, "stop %s should exist", name)
	return s.ID
}

func TestLoadZipFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.zip")
	require.NoError(t, os.WriteFile(path, createGTFSZip(t, sampleFeed()), 0644))

	cat := catalogue.New()
	stats, err := LoadZipFile(path, cat, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Buses)
	assert.Equal(t, 4, cat.StopCount())

	_, err = LoadZipFile(filepath.Join(t.TempDir(), "missing.zip"), catalogue.New(), Options{})
	assert.Error(t, err)
}

func TestLoadZip_Errors(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		isErr error
	}{
		{
			name: "not a zip",
			data: []byte("definitely not a zip"),
		},
		{
			name:  "no stops",
			data:  createGTFSZip(t, map[string]string{"routes.txt": "route_id\nR1\n"}),
			isErr: ErrNoStops,
		},
		{
			name: "stops without coordinates",
			data: createGTFSZip(t, map[string]string{"stops.txt": "stop_id,stop_name\nS1,Alpha\n"}),
		},
		{
			name: "trips without trip_id",
			data: createGTFSZip(t, map[string]string{
				"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\nS1,A,0,0\n",
				"trips.txt": "route_id\nR1\n",
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadZipBytes(tt.data, catalogue.New(), Options{})
			require.Error(t, err)
			if tt.isErr != nil && !errors.Is(err, tt.isErr) {
				t.Errorf("expected %v, got %v", tt.isErr, err)
			}
		})
	}
}

func TestRepresentativeTrips(t *testing.T) {
	f := newFeedIndex()
	f.tripToRoute = map[string]string{"b": "R", "a": "R", "c": "R", "z": "Q"}
	f.tripStopSeq = map[string][]string{
		"a": {"1", "2"},
		"b": {"1", "2"},
		"c": {"1"},
	}
	assert.Equal(t, map[string]string{"R": "a"}, f.representativeTrips())
}
