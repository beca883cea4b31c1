package main

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/cristianoliveira/commentview/internal/colors"
	"github.com/cristianoliveira/commentview/internal/domain"
	"github.com/cristianoliveira/commentview/internal/settings"
	"github.com/cristianoliveira/commentview/internal/source"
	"github.com/cristianoliveira/commentview/internal/storage"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

func plain(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// fakeClient serves a mock source and an in-memory store.
type fakeClient struct {
	src      *source.MockSource
	store    storage.Store
	defaults settings.Defaults
	srcErr   error
	storeErr error
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		src:      new(source.MockSource),
		store:    storage.NewMemoryStore(),
		defaults: settings.Defaults{PageSize: 10},
	}
}

func (f *fakeClient) Source() (source.Source, error) {
	if f.srcErr != nil {
		return nil, f.srcErr
	}
	return f.src, nil
}

func (f *fakeClient) Store() (storage.Store, error) {
	if f.storeErr != nil {
		return nil, f.storeErr
	}
	return f.store, nil
}

func (f *fakeClient) Defaults() settings.Defaults {
	return f.defaults
}

func (f *fakeClient) withRecords(records []domain.Record) *fakeClient {
	f.src.On("FetchRecords", mock.Anything).Return(records, nil)
	return f
}

func makeRecords(n int) []domain.Record {
	records := make([]domain.Record, n)
	for i := range records {
		records[i] = domain.Record{
			GroupID:        i/5 + 1,
			ID:             i + 1,
			DisplayName:    fmt.Sprintf("name %02d", n-i),
			ContactAddress: fmt.Sprintf("user%02d@example.com", i+1),
			BodyText:       fmt.Sprintf("body\tof\ncomment %d", i+1),
		}
	}
	return records
}

func sampleProfile() domain.Profile {
	return domain.Profile{
		ID:       1,
		Name:     "Leanne Graham",
		Username: "Bret",
		Email:    "Sincere@april.biz",
		Website:  "hildegard.org",
		Company:  domain.Company{Name: "Romaguera-Crona"},
	}
}

// execute runs c with args and returns what it wrote to stdout.
func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetIn(bytes.NewBufferString(""))
	c.SetArgs(args)
	err := c.ExecuteContext(context.Background())
	return out.String(), err
}

// captureColors redirects colors output for the duration of the test.
func captureColors(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	colors.SetOutput(&buf, &buf)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })
	return &buf
}
