package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStationCreation(t *testing.T) {
	station := NewStation("1-11", "中华门", []string{"1"})

	assert.Equal(t, "1-11", station.ID)
	assert.Equal(t, "中华门", station.Name)
	assert.Equal(t, []string{"1"}, station.LineIDs)
}

func TestStationServesLine(t *testing.T) {
	station := NewStation("2-11", "新街口", []string{"2"})

	assert.True(t, station.ServesLine("2"))
	assert.False(t, station.ServesLine("1"))
	assert.False(t, NewStation("x", "x", nil).ServesLine("1"))
}

func TestStationJSON(t *testing.T) {
	station := NewStation("S1-8", "禄口机场", []string{"S1"})

	jsonData, err := json.Marshal(station)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":"S1-8","name":"禄口机场","lineIds":["S1"]}`, string(jsonData))
}

func TestLineCreation(t *testing.T) {
	line := NewLine("1", "1号线", []string{"1-1", "1-2", "1-3"})

	assert.Equal(t, "1", line.ID)
	assert.Equal(t, "1号线", line.Name)
	assert.Equal(t, []string{"1-1", "1-2", "1-3"}, line.StationIDs)
}
