package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sc "sanmei/app/calendar"
)

func currentTable(t *testing.T, from, to int) [][12]int {
	t.Helper()
	var table [][12]int
	for _, yt := range sc.Years(from, to) {
		var row [12]int
		for i, term := range yt.Terms {
			row[i] = term.Day
		}
		table = append(table, row)
	}
	return table
}

func TestXlsxRoundTrip(t *testing.T) {
	table := currentTable(t, 1999, 2001)
	path := filepath.Join(t.TempDir(), "terms.xlsx")
	require.NoError(t, writeXlsx(path, 1999, table))

	from, got, err := readXlsx(path)
	require.NoError(t, err)
	assert.Equal(t, 1999, from)
	assert.Equal(t, table, got)
}

func TestWriteGo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solarterm_data.go")
	require.NoError(t, writeGo(path, 2000, currentTable(t, 2000, 2001)))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	src := string(b)
	assert.True(t, strings.HasPrefix(src, "// Code generated by test/gen_solarterm; DO NOT EDIT."))
	assert.Contains(t, src, "MinYear = 2000")
	assert.Contains(t, src, "MaxYear = 2001")
	assert.Contains(t, src, "{6, 4, 5, 4, 5, 5, 7, 7, 7, 8, 7, 7}, // 2000")
}

func TestCheck(t *testing.T) {
	table := currentTable(t, 1994, 1998)
	assert.NoError(t, check(1994, table))

	table[0][1]++
	assert.Error(t, check(1994, table))
}

func useCST(t *testing.T) {
	t.Helper()
	old := time.Local
	time.Local = cst
	t.Cleanup(func() { time.Local = old })
}

func TestTermDayNearMidnight(t *testing.T) {
	useCST(t)

	// 2017 立春 北京时间 2/3 23:34，日本时间已是 2/4
	d, err := termDay(2017, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	// 2023 小寒 日本时间 1/6 凌晨
	d, err = termDay(2023, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, d)
}

func TestComputeMatchesTable(t *testing.T) {
	useCST(t)

	table, err := compute(2013, 2023)
	require.NoError(t, err)
	assert.NoError(t, check(2013, table))
}

func TestComputeRange(t *testing.T) {
	useCST(t)

	_, err := compute(sc.MinYear, 1910)
	assert.Error(t, err)
	_, err = compute(2000, sc.MaxYear+1)
	assert.Error(t, err)
}

func TestMonthGanzhiOutOfRange(t *testing.T) {
	useCST(t)

	_, err := monthGanzhi(endOfDay(1901, 6, 1))
	assert.Error(t, err)
}

func TestMergeKeepsEarlyYears(t *testing.T) {
	table := currentTable(t, 2000, 2000)
	table[0][0] = 7

	full, err := merge(2000, table)
	require.NoError(t, err)
	require.Len(t, full, sc.MaxYear-sc.MinYear+1)
	assert.Equal(t, currentTable(t, sc.MinYear, 1904), full[:1905-sc.MinYear])
	assert.Equal(t, 7, full[2000-sc.MinYear][0])
	assert.Equal(t, currentTable(t, 2001, sc.MaxYear), full[2001-sc.MinYear:])

	_, err = merge(sc.MaxYear, currentTable(t, 2000, 2001))
	assert.Error(t, err)
}
