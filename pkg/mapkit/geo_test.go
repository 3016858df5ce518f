package mapkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsOfEmptySet(t *testing.T) {
	_, ok := BoundsOf(nil)
	assert.False(t, ok)
}

func TestBoundsOfSinglePoint(t *testing.T) {
	p := Point{Lat: 39.915, Lng: 116.404}
	b, ok := BoundsOf([]Point{p})
	require.True(t, ok)
	assert.Equal(t, p, b.SW)
	assert.Equal(t, p, b.NE)
}

func TestBoundsOfSpansAllPoints(t *testing.T) {
	points := []Point{
		{Lat: 39.915, Lng: 116.404},
		{Lat: 31.230, Lng: 121.473},
		{Lat: 23.129, Lng: 113.264},
	}
	b, ok := BoundsOf(points)
	require.True(t, ok)
	assert.Equal(t, Point{Lat: 23.129, Lng: 113.264}, b.SW)
	assert.Equal(t, Point{Lat: 39.915, Lng: 121.473}, b.NE)
}

func TestBoundsContainsIsEdgeInclusive(t *testing.T) {
	b := Bounds{SW: Point{Lat: 30, Lng: 110}, NE: Point{Lat: 40, Lng: 120}}

	assert.True(t, b.Contains(Point{Lat: 30, Lng: 110}))
	assert.True(t, b.Contains(Point{Lat: 40, Lng: 120}))
	assert.True(t, b.Contains(Point{Lat: 35, Lng: 115}))
	assert.False(t, b.Contains(Point{Lat: 29.999, Lng: 115}))
	assert.False(t, b.Contains(Point{Lat: 35, Lng: 120.001}))
}

func TestFitViewportContainsEveryInput(t *testing.T) {
	points := []Point{
		{Lat: 39.9163, Lng: 116.3972},
		{Lat: 39.9990, Lng: 116.2753},
		{Lat: 40.3584, Lng: 116.0200},
	}
	center, zoom, ok := FitViewport(points)
	require.True(t, ok)

	b, _ := BoundsOf(points)
	assert.True(t, b.Contains(center))
	assert.GreaterOrEqual(t, zoom, minZoom)
	assert.LessOrEqual(t, zoom, maxZoom)
}

func TestFitViewportZoomShrinksAsSpanGrows(t *testing.T) {
	tight := []Point{
		{Lat: 39.915, Lng: 116.404},
		{Lat: 39.920, Lng: 116.410},
	}
	wide := []Point{
		{Lat: 39.915, Lng: 116.404},
		{Lat: 23.129, Lng: 113.264},
	}

	_, tightZoom, ok := FitViewport(tight)
	require.True(t, ok)
	_, wideZoom, ok := FitViewport(wide)
	require.True(t, ok)

	assert.Greater(t, tightZoom, wideZoom)
}

func TestFitViewportCoincidentPointsUseMaxZoom(t *testing.T) {
	p := Point{Lat: 39.915, Lng: 116.404}
	center, zoom, ok := FitViewport([]Point{p, p})
	require.True(t, ok)
	assert.Equal(t, p, center)
	assert.Equal(t, maxZoom, zoom)
}
