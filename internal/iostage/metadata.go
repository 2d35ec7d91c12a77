package iostage

import (
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// Metadata is the content of metadata.yaml of a SHOGUN database.
// Paths are relative to the database directory.
type Metadata struct {
	General General `yaml:"general"`
	// Bowtie2 is the index prefix inside the database directory.
	Bowtie2 string `yaml:"bowtie2"`
}

// General lists the reference files of the database.
type General struct {
	Taxonomy string `yaml:"taxonomy"`
	Fasta    string `yaml:"fasta"`
}

// NewMetadata describes a staging directory with a bowtie2 index
// called indexName.
func NewMetadata(indexName string) Metadata {
	return Metadata{
		General: General{
			Taxonomy: TaxonomyFile,
			Fasta:    RefSeqsFile,
		},
		Bowtie2: path.Join(IndexDir, indexName),
	}
}

func writeMetadata(file string, meta Metadata) error {
	bs, err := yaml.Marshal(meta)
	if err != nil {
		return err
	}
	return os.WriteFile(file, bs, 0644)
}
