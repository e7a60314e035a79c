// SPDX-License-Identifier: MIT
// Package: hexboard/topology
//
// tables.go — canonical adjacency data and read-only accessors.
//
// Vertex ids run left to right, top to bottom along the zig-zag rows of
// corners; edge ids follow the same sweep, alternating rows of slanted sides
// with rows of vertical sides. Tile ids are row-major.

package topology

import "slices"

// vertexVertices lists, per vertex, the vertices one edge away.
var vertexVertices = [VertexCount][]int{
	0: {1, 8}, 1: {0, 2}, 2: {1, 3, 10}, 3: {2, 4}, 4: {3, 5, 12}, 5: {4, 6},
	6: {5, 14}, 7: {8, 17}, 8: {0, 7, 9}, 9: {8, 10, 19}, 10: {2, 9, 11}, 11: {10, 12, 21},
	12: {4, 11, 13}, 13: {12, 14, 23}, 14: {6, 13, 15}, 15: {14, 25}, 16: {17, 27}, 17: {7, 16, 18},
	18: {17, 19, 29}, 19: {9, 18, 20}, 20: {19, 21, 31}, 21: {11, 20, 22}, 22: {21, 23, 33}, 23: {13, 22, 24},
	24: {23, 25, 35}, 25: {15, 24, 26}, 26: {25, 37}, 27: {16, 28}, 28: {27, 29, 38}, 29: {18, 28, 30},
	30: {29, 31, 40}, 31: {20, 30, 32}, 32: {31, 33, 42}, 33: {22, 32, 34}, 34: {33, 35, 44}, 35: {24, 34, 36},
	36: {35, 37, 46}, 37: {26, 36}, 38: {28, 39}, 39: {38, 40, 47}, 40: {30, 39, 41}, 41: {40, 42, 49},
	42: {32, 41, 43}, 43: {42, 44, 51}, 44: {34, 43, 45}, 45: {44, 46, 53}, 46: {36, 45}, 47: {39, 48},
	48: {47, 49}, 49: {41, 48, 50}, 50: {49, 51}, 51: {43, 50, 52}, 52: {51, 53}, 53: {45, 52},
}

// vertexEdges lists, per vertex, the incident edges.
var vertexEdges = [VertexCount][]int{
	0: {0, 6}, 1: {0, 1}, 2: {1, 2, 7}, 3: {2, 3}, 4: {3, 4, 8}, 5: {4, 5},
	6: {5, 9}, 7: {10, 18}, 8: {6, 10, 11}, 9: {11, 12, 19}, 10: {7, 12, 13}, 11: {13, 14, 20},
	12: {8, 14, 15}, 13: {15, 16, 21}, 14: {9, 16, 17}, 15: {17, 22}, 16: {23, 33}, 17: {18, 23, 24},
	18: {24, 25, 34}, 19: {19, 25, 26}, 20: {26, 27, 35}, 21: {20, 27, 28}, 22: {28, 29, 36}, 23: {21, 29, 30},
	24: {30, 31, 37}, 25: {22, 31, 32}, 26: {32, 38}, 27: {33, 39}, 28: {39, 40, 49}, 29: {34, 40, 41},
	30: {41, 42, 50}, 31: {35, 42, 43}, 32: {43, 44, 51}, 33: {36, 44, 45}, 34: {45, 46, 52}, 35: {37, 46, 47},
	36: {47, 48, 53}, 37: {38, 48}, 38: {49, 54}, 39: {54, 55, 62}, 40: {50, 55, 56}, 41: {56, 57, 63},
	42: {51, 57, 58}, 43: {58, 59, 64}, 44: {52, 59, 60}, 45: {60, 61, 65}, 46: {53, 61}, 47: {62, 66},
	48: {66, 67}, 49: {63, 67, 68}, 50: {68, 69}, 51: {64, 69, 70}, 52: {70, 71}, 53: {65, 71},
}

// edgeVertices holds the two endpoints of every edge, lower id first.
var edgeVertices = [EdgeCount][2]int{
	0: {0, 1}, 1: {1, 2}, 2: {2, 3}, 3: {3, 4}, 4: {4, 5}, 5: {5, 6}, 6: {0, 8}, 7: {2, 10},
	8: {4, 12}, 9: {6, 14}, 10: {7, 8}, 11: {8, 9}, 12: {9, 10}, 13: {10, 11}, 14: {11, 12}, 15: {12, 13},
	16: {13, 14}, 17: {14, 15}, 18: {7, 17}, 19: {9, 19}, 20: {11, 21}, 21: {13, 23}, 22: {15, 25}, 23: {16, 17},
	24: {17, 18}, 25: {18, 19}, 26: {19, 20}, 27: {20, 21}, 28: {21, 22}, 29: {22, 23}, 30: {23, 24}, 31: {24, 25},
	32: {25, 26}, 33: {16, 27}, 34: {18, 29}, 35: {20, 31}, 36: {22, 33}, 37: {24, 35}, 38: {26, 37}, 39: {27, 28},
	40: {28, 29}, 41: {29, 30}, 42: {30, 31}, 43: {31, 32}, 44: {32, 33}, 45: {33, 34}, 46: {34, 35}, 47: {35, 36},
	48: {36, 37}, 49: {28, 38}, 50: {30, 40}, 51: {32, 42}, 52: {34, 44}, 53: {36, 46}, 54: {38, 39}, 55: {39, 40},
	56: {40, 41}, 57: {41, 42}, 58: {42, 43}, 59: {43, 44}, 60: {44, 45}, 61: {45, 46}, 62: {39, 47}, 63: {41, 49},
	64: {43, 51}, 65: {45, 53}, 66: {47, 48}, 67: {48, 49}, 68: {49, 50}, 69: {50, 51}, 70: {51, 52}, 71: {52, 53},
}

// edgeEdges lists, per edge, the edges sharing an endpoint with it.
var edgeEdges = [EdgeCount][]int{
	0: {1, 6}, 1: {0, 2, 7}, 2: {1, 3, 7}, 3: {2, 4, 8},
	4: {3, 5, 8}, 5: {4, 9}, 6: {0, 10, 11}, 7: {1, 2, 12, 13},
	8: {3, 4, 14, 15}, 9: {5, 16, 17}, 10: {6, 11, 18}, 11: {6, 10, 12, 19},
	12: {7, 11, 13, 19}, 13: {7, 12, 14, 20}, 14: {8, 13, 15, 20}, 15: {8, 14, 16, 21},
	16: {9, 15, 17, 21}, 17: {9, 16, 22}, 18: {10, 23, 24}, 19: {11, 12, 25, 26},
	20: {13, 14, 27, 28}, 21: {15, 16, 29, 30}, 22: {17, 31, 32}, 23: {18, 24, 33},
	24: {18, 23, 25, 34}, 25: {19, 24, 26, 34}, 26: {19, 25, 27, 35}, 27: {20, 26, 28, 35},
	28: {20, 27, 29, 36}, 29: {21, 28, 30, 36}, 30: {21, 29, 31, 37}, 31: {22, 30, 32, 37},
	32: {22, 31, 38}, 33: {23, 39}, 34: {24, 25, 40, 41}, 35: {26, 27, 42, 43},
	36: {28, 29, 44, 45}, 37: {30, 31, 46, 47}, 38: {32, 48}, 39: {33, 40, 49},
	40: {34, 39, 41, 49}, 41: {34, 40, 42, 50}, 42: {35, 41, 43, 50}, 43: {35, 42, 44, 51},
	44: {36, 43, 45, 51}, 45: {36, 44, 46, 52}, 46: {37, 45, 47, 52}, 47: {37, 46, 48, 53},
	48: {38, 47, 53}, 49: {39, 40, 54}, 50: {41, 42, 55, 56}, 51: {43, 44, 57, 58},
	52: {45, 46, 59, 60}, 53: {47, 48, 61}, 54: {49, 55, 62}, 55: {50, 54, 56, 62},
	56: {50, 55, 57, 63}, 57: {51, 56, 58, 63}, 58: {51, 57, 59, 64}, 59: {52, 58, 60, 64},
	60: {52, 59, 61, 65}, 61: {53, 60, 65}, 62: {54, 55, 66}, 63: {56, 57, 67, 68},
	64: {58, 59, 69, 70}, 65: {60, 61, 71}, 66: {62, 67}, 67: {63, 66, 68},
	68: {63, 67, 69}, 69: {64, 68, 70}, 70: {64, 69, 71}, 71: {65, 70},
}

// tileVertices holds the corners of every tile, top row first.
var tileVertices = [TileCount][TileSides]int{
	0:  {0, 1, 2, 8, 9, 10},
	1:  {2, 3, 4, 10, 11, 12},
	2:  {4, 5, 6, 12, 13, 14},
	3:  {7, 8, 9, 17, 18, 19},
	4:  {9, 10, 11, 19, 20, 21},
	5:  {11, 12, 13, 21, 22, 23},
	6:  {13, 14, 15, 23, 24, 25},
	7:  {16, 17, 18, 27, 28, 29},
	8:  {18, 19, 20, 29, 30, 31},
	9:  {20, 21, 22, 31, 32, 33},
	10: {22, 23, 24, 33, 34, 35},
	11: {24, 25, 26, 35, 36, 37},
	12: {28, 29, 30, 38, 39, 40},
	13: {30, 31, 32, 40, 41, 42},
	14: {32, 33, 34, 42, 43, 44},
	15: {34, 35, 36, 44, 45, 46},
	16: {39, 40, 41, 47, 48, 49},
	17: {41, 42, 43, 49, 50, 51},
	18: {43, 44, 45, 51, 52, 53},
}

// tileEdges holds the sides of every tile.
var tileEdges = [TileCount][TileSides]int{
	0:  {0, 1, 6, 7, 11, 12},
	1:  {2, 3, 7, 8, 13, 14},
	2:  {4, 5, 8, 9, 15, 16},
	3:  {10, 11, 18, 19, 24, 25},
	4:  {12, 13, 19, 20, 26, 27},
	5:  {14, 15, 20, 21, 28, 29},
	6:  {16, 17, 21, 22, 30, 31},
	7:  {23, 24, 33, 34, 39, 40},
	8:  {25, 26, 34, 35, 41, 42},
	9:  {27, 28, 35, 36, 43, 44},
	10: {29, 30, 36, 37, 45, 46},
	11: {31, 32, 37, 38, 47, 48},
	12: {40, 41, 49, 50, 54, 55},
	13: {42, 43, 50, 51, 56, 57},
	14: {44, 45, 51, 52, 58, 59},
	15: {46, 47, 52, 53, 60, 61},
	16: {55, 56, 62, 63, 66, 67},
	17: {57, 58, 63, 64, 68, 69},
	18: {59, 60, 64, 65, 70, 71},
}

// canonical views the tables above without copying. It must never be
// handed out; Canonical returns a deep copy.
var canonical = Table{
	VertexVertices: vertexVertices[:],
	VertexEdges:    vertexEdges[:],
	EdgeVertices:   edgeVertices[:],
	EdgeEdges:      edgeEdges[:],
	TileVertices:   tileVertices[:],
	TileEdges:      tileEdges[:],
}

// Canonical returns a deep copy of the built-in board tables.
func Canonical() Table {
	t := Table{
		VertexVertices: make([][]int, VertexCount),
		VertexEdges:    make([][]int, VertexCount),
		EdgeVertices:   slices.Clone(canonical.EdgeVertices),
		EdgeEdges:      make([][]int, EdgeCount),
		TileVertices:   slices.Clone(canonical.TileVertices),
		TileEdges:      slices.Clone(canonical.TileEdges),
	}
	for v := 0; v < VertexCount; v++ {
		t.VertexVertices[v] = slices.Clone(vertexVertices[v])
		t.VertexEdges[v] = slices.Clone(vertexEdges[v])
	}
	for e := 0; e < EdgeCount; e++ {
		t.EdgeEdges[e] = slices.Clone(edgeEdges[e])
	}

	return t
}

// VertexVertices returns the neighbours of vertex v, or nil if v is out of range.
func VertexVertices(v int) []int {
	if v < 0 || v >= VertexCount {
		return nil
	}
	return slices.Clone(vertexVertices[v])
}

// VertexEdges returns the edges incident to vertex v, or nil if v is out of range.
func VertexEdges(v int) []int {
	if v < 0 || v >= VertexCount {
		return nil
	}
	return slices.Clone(vertexEdges[v])
}

// EdgeVertices returns the endpoints of edge e; ok is false if e is out of range.
func EdgeVertices(e int) (ends [2]int, ok bool) {
	if e < 0 || e >= EdgeCount {
		return ends, false
	}
	return edgeVertices[e], true
}

// EdgeEdges returns the edges sharing an endpoint with e, or nil if e is out of range.
func EdgeEdges(e int) []int {
	if e < 0 || e >= EdgeCount {
		return nil
	}
	return slices.Clone(edgeEdges[e])
}

// TileVertices returns the corners of tile t; ok is false if t is out of range.
func TileVertices(t int) (corners [TileSides]int, ok bool) {
	if t < 0 || t >= TileCount {
		return corners, false
	}
	return tileVertices[t], true
}

// TileEdges returns the sides of tile t; ok is false if t is out of range.
func TileEdges(t int) (sides [TileSides]int, ok bool) {
	if t < 0 || t >= TileCount {
		return sides, false
	}
	return tileEdges[t], true
}
