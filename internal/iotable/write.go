package iotable

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/gnfmt"
	gnshogun "github.com/gnames/gnshogun/pkg"
	"github.com/gnames/gnshogun/pkg/table"
)

// Output formats.
const (
	FormatBIOM = "biom"
	FormatTSV  = "tsv"
)

// Extension returns the file extension for a format.
func Extension(format string) string {
	if format == FormatTSV {
		return ".tsv"
	}
	return ".biom"
}

// Write saves a feature table in the given format.
func Write(path string, ft *table.FeatureTable, format string) error {
	var data []byte
	var err error
	switch format {
	case FormatBIOM:
		data, err = encodeBIOM(ft)
	case FormatTSV:
		data = encodeTSV(ft)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return TableWriteError(path, err)
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return TableWriteError(path, err)
	}
	return nil
}

func encodeTSV(ft *table.FeatureTable) []byte {
	var sb strings.Builder
	sb.WriteString("#OTU ID")
	for _, v := range ft.Samples {
		sb.WriteString("\t" + v)
	}
	sb.WriteString("\n")

	dense := ft.Dense()
	for i, feat := range ft.Features {
		sb.WriteString(feat)
		for _, v := range dense[i] {
			sb.WriteString("\t" + formatValue(v))
		}
		sb.WriteString("\n")
	}
	return []byte(sb.String())
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BIOM is the BIOM 1.0 JSON representation of a table.
type BIOM struct {
	ID                string       `json:"id"`
	Format            string       `json:"format"`
	FormatURL         string       `json:"format_url"`
	Type              string       `json:"type"`
	GeneratedBy       string       `json:"generated_by"`
	Date              string       `json:"date"`
	Rows              []BIOMItem   `json:"rows"`
	Columns           []BIOMItem   `json:"columns"`
	MatrixType        string       `json:"matrix_type"`
	MatrixElementType string       `json:"matrix_element_type"`
	Shape             [2]int       `json:"shape"`
	Data              [][3]float64 `json:"data"`
}

// BIOMItem describes a row or a column.
type BIOMItem struct {
	ID       string         `json:"id"`
	Metadata map[string]any `json:"metadata"`
}

// ToBIOM converts a feature table to BIOM 1.0 structure.
func ToBIOM(ft *table.FeatureTable) BIOM {
	elType := "float"
	if ft.IsInteger() {
		elType = "int"
	}
	r, c := ft.Shape()
	res := BIOM{
		ID:                ft.ID,
		Format:            "Biological Observation Matrix 1.0.0",
		FormatURL:         "http://biom-format.org",
		Type:              "OTU table",
		GeneratedBy:       "gnshogun " + gnshogun.Version,
		Date:              time.Now().UTC().Format(time.RFC3339),
		Rows:              items(ft.Features),
		Columns:           items(ft.Samples),
		MatrixType:        "sparse",
		MatrixElementType: elType,
		Shape:             [2]int{r, c},
		Data:              make([][3]float64, 0, len(ft.Entries)),
	}
	for _, e := range ft.Entries {
		res.Data = append(res.Data, [3]float64{float64(e.Row), float64(e.Col), e.Value})
	}
	return res
}

func items(ids []string) []BIOMItem {
	res := make([]BIOMItem, len(ids))
	for i, v := range ids {
		res[i] = BIOMItem{ID: v}
	}
	return res
}

func encodeBIOM(ft *table.FeatureTable) ([]byte, error) {
	enc := gnfmt.GNjson{Pretty: true}
	return enc.Encode(ToBIOM(ft))
}
