package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transit-router/catalogue"
	"github.com/theoremus-urban-solutions/transit-router/geo"
)

func stopIDs(t *testing.T, c *catalogue.Catalogue, names ...string) []catalogue.StopID {
	t.Helper()
	out := make([]catalogue.StopID, 0, len(names))
	for _, n := range names {
		s, ok := c.FindStop(n)
		require.True(t, ok, "stop %s should exist", n)
		out = append(out, s.ID)
	}
	return out
}

// loopCatalogue: A(0,0) B(0,1) C(0,2), A->B 1000, B->C 1000, circular bus "1"
// over [A,B,C,A], plus an unserved stop.
func loopCatalogue(t *testing.T) *catalogue.Catalogue {
	t.Helper()
	c := catalogue.New()
	c.AddStop("A", geo.Coordinates{Lat: 0, Lng: 0})
	c.AddStop("B", geo.Coordinates{Lat: 0, Lng: 1})
	c.AddStop("C", geo.Coordinates{Lat: 0, Lng: 2})
	c.AddStop("Lonely", geo.Coordinates{Lat: 1, Lng: 1})
	c.AddDistance("A", "B", 1000)
	c.AddDistance("B", "C", 1000)
	c.AddBus("1", stopIDs(t, c, "A", "B", "C", "A"), true)
	return c
}

var loopSettings = Settings{BusWaitTime: 6, BusVelocity: 60}

func TestRouter_LoopScenario(t *testing.T) {
	r := New(loopCatalogue(t), loopSettings)

	route, ok := r.FindRoute("A", "C")
	require.True(t, ok)
	assert.InDelta(t, 8.0, route.TotalTime, 1e-9)
	require.Len(t, route.Items, 2)
	assert.Equal(t, Item{Type: ItemWait, StopName: "A", Time: 6}, route.Items[0])
	assert.Equal(t, ItemBus, route.Items[1].Type)
	assert.Equal(t, "1", route.Items[1].Bus)
	assert.Equal(t, 2, route.Items[1].SpanCount)
	assert.InDelta(t, 2.0, route.Items[1].Time, 1e-9)
}

func TestRouter_GraphShape(t *testing.T) {
	c := loopCatalogue(t)
	c.AddStop("X", geo.Coordinates{Lat: 2, Lng: 2})
	c.AddBus("line", stopIDs(t, c, "C", "X"), false)
	r := New(c, loopSettings)

	// Lonely is never served; A, B, C, X are.
	assert.Equal(t, 4, r.Graph().VertexCount())
	// circular [A,B,C,A]: 6 pairs; line [C,X,C]: 3 pairs, both directions.
	assert.Equal(t, 6+3*2, r.Graph().EdgeCount())

	for id := 0; id < r.Graph().EdgeCount(); id++ {
		e := r.Graph().Edge(EdgeID(id))
		assert.GreaterOrEqual(t, e.Weight, float64(loopSettings.BusWaitTime))
		data := r.EdgeData(EdgeID(id))
		assert.Positive(t, data.SpanCount)
		assert.NotEmpty(t, r.StopName(e.From))
	}
}

func TestRouter_LineRouteReverse(t *testing.T) {
	c := catalogue.New()
	c.AddStop("X", geo.Coordinates{Lat: 0, Lng: 0})
	c.AddStop("Y", geo.Coordinates{Lat: 0, Lng: 0.01})
	c.AddStop("Z", geo.Coordinates{Lat: 0, Lng: 0.02})
	c.AddDistance("X", "Y", 500)
	c.AddDistance("Y", "Z", 1000)
	c.AddDistance("Z", "Y", 2000)
	c.AddBus("L", stopIDs(t, c, "X", "Y", "Z"), false)

	// 30 km/h = 500 m/min
	r := New(c, Settings{BusWaitTime: 2, BusVelocity: 30})

	route, ok := r.FindRoute("Z", "X")
	require.True(t, ok)
	// Z->Y 2000 + Y->X (falls back to X->Y) 500 = 2500m = 5 min ride
	assert.InDelta(t, 7.0, route.TotalTime, 1e-9)
	require.Len(t, route.Items, 2)
	assert.Equal(t, "Z", route.Items[0].StopName)
	assert.Equal(t, "L", route.Items[1].Bus)
	assert.Equal(t, 2, route.Items[1].SpanCount)

	route, ok = r.FindRoute("X", "Z")
	require.True(t, ok)
	assert.InDelta(t, 2+1500.0/500, route.TotalTime, 1e-9)
}

func TestRouter_Transfer(t *testing.T) {
	c := loopCatalogue(t)
	c.AddStop("D", geo.Coordinates{Lat: 0, Lng: 3})
	c.AddDistance("C", "D", 3000)
	c.AddBus("2", stopIDs(t, c, "C", "D"), false)
	r := New(c, loopSettings)

	route, ok := r.FindRoute("A", "D")
	require.True(t, ok)
	// wait 6 + ride 2 on "1", wait 6 + ride 3 on "2"
	assert.InDelta(t, 17.0, route.TotalTime, 1e-9)
	require.Len(t, route.Items, 4)
	assert.Equal(t, "A", route.Items[0].StopName)
	assert.Equal(t, "1", route.Items[1].Bus)
	assert.Equal(t, "C", route.Items[2].StopName)
	assert.Equal(t, "2", route.Items[3].Bus)
	assert.Equal(t, 1, route.Items[3].SpanCount)

	sum := 0.0
	for _, item := range route.Items {
		sum += item.Time
	}
	assert.InDelta(t, route.TotalTime, sum, 1e-9)
}

func TestRouter_NotFound(t *testing.T) {
	r := New(loopCatalogue(t), loopSettings)

	tests := []struct {
		name     string
		from, to string
	}{
		{name: "unknown source", from: "Nowhere", to: "A"},
		{name: "unknown destination", from: "A", to: "Nowhere"},
		{name: "unserved source", from: "Lonely", to: "A"},
		{name: "unserved destination", from: "B", to: "Lonely"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := r.FindRoute(tt.from, tt.to)
			assert.False(t, ok)
		})
	}
}

func TestRouter_Unreachable(t *testing.T) {
	c := loopCatalogue(t)
	c.AddStop("P", geo.Coordinates{Lat: 5, Lng: 5})
	c.AddStop("Q", geo.Coordinates{Lat: 5, Lng: 6})
	c.AddBus("island", stopIDs(t, c, "P", "Q", "P"), true)
	r := New(c, loopSettings)

	_, ok := r.FindRoute("A", "P")
	assert.False(t, ok)
}

func TestRouter_SameStop(t *testing.T) {
	r := New(loopCatalogue(t), loopSettings)
	route, ok := r.FindRoute("B", "B")
	require.True(t, ok)
	assert.Equal(t, 0.0, route.TotalTime)
	assert.Empty(t, route.Items)
}

func TestRouter_Idempotent(t *testing.T) {
	r := New(loopCatalogue(t), loopSettings)
	first, ok1 := r.FindRoute("B", "A")
	second, ok2 := r.FindRoute("B", "A")
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
}

func TestRouter_FrozenSnapshot(t *testing.T) {
	c := loopCatalogue(t)
	r := New(c, loopSettings)
	edges := r.Graph().EdgeCount()

	c.AddStop("Late", geo.Coordinates{Lat: 0, Lng: 4})
	c.AddBus("late", stopIDs(t, c, "A", "Late"), false)

	_, ok := r.FindRoute("A", "Late")
	assert.False(t, ok)
	assert.Equal(t, edges, r.Graph().EdgeCount())
}

func TestItemType_String(t *testing.T) {
	assert.Equal(t, "Wait", ItemWait.String())
	assert.Equal(t, "Bus", ItemBus.String())
	assert.Equal(t, "Unknown", ItemType(9).String())
}
