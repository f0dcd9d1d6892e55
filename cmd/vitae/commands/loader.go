package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/vitae/docs"
	"github.com/teranos/vitae/errors"
	"github.com/teranos/vitae/rc"
)

// collectionDir resolves the collections directory: the --dir flag wins,
// otherwise the configured default.
func collectionDir(cmd *cobra.Command) (string, error) {
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		return dir, nil
	}
	config, err := rc.Load()
	if err != nil {
		return "", err
	}
	return config.Collections.Dir, nil
}

// loadCollection reads <dir>/<name>.yml into a collection. Both layouts the
// original databases use are accepted: a sequence of documents, or a
// mapping of _id to document body.
func loadCollection(dir, name string) (docs.Collection, error) {
	path := filepath.Join(dir, name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read collection %q", name)
	}

	var seq []map[string]any
	if err := yaml.Unmarshal(data, &seq); err == nil {
		coll := make(docs.Collection, len(seq))
		for i, raw := range seq {
			coll[i] = docs.Document(raw)
		}
		return coll, nil
	}

	var keyed map[string]map[string]any
	if err := yaml.Unmarshal(data, &keyed); err != nil {
		return nil, errors.Wrapf(err, "collection %q is neither a sequence nor an _id mapping", name)
	}
	coll := make(docs.Collection, 0, len(keyed))
	for id, raw := range keyed {
		doc := docs.Document(raw)
		if !doc.Has("_id") {
			doc["_id"] = id
		}
		coll = append(coll, doc)
	}
	return coll, nil
}

// parseDateFlag parses a --since/--before value as YYYY-MM-DD. An empty
// value means the bound is open.
func parseDateFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, errors.Wrapf(err, "expected YYYY-MM-DD, got %q", value)
	}
	return &t, nil
}

// intField renders a numeric field as a display string, "" when absent.
func intField(d docs.Document, key string) string {
	if n, ok := d.Int(key); ok {
		return strconv.Itoa(n)
	}
	return ""
}

// outputJSON prints a result as indented JSON.
func outputJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	fmt.Println(string(data))
	return nil
}
