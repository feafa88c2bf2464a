/*
Package router answers fastest-itinerary queries over a catalogue snapshot.

New freezes the catalogue into a directed multigraph: one vertex per stop that
appears on any bus route, and for every bus and every pair of route positions
i < j an edge s[i] -> s[j] weighted by the boarding wait plus the ride time over
the accumulated road distance. Line (non-circular) buses additionally get the
reverse edges s[j] -> s[i], weighted by the distances in the opposite direction.

FindRoute runs Dijkstra's algorithm over that graph and turns the edge
sequence into Wait/Bus itinerary items.

The graph is built once. Changes made to the catalogue afterwards are not
visible to an existing Router, which is safe for concurrent read-only use.
*/
package router
