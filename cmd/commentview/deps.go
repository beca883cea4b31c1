package main

import (
	"sync"

	"github.com/cristianoliveira/commentview/internal/settings"
	"github.com/cristianoliveira/commentview/internal/source"
	"github.com/cristianoliveira/commentview/internal/storage"
)

// sourceClient gives commands access to the configured data source.
type sourceClient interface {
	Source() (source.Source, error)
}

// preferencesClient gives commands access to the preference store.
type preferencesClient interface {
	Store() (storage.Store, error)
	Defaults() settings.Defaults
}

// appClient lazily creates the source and store from configuration, so
// they are only built after the root command has loaded it.
type appClient struct {
	newSource func() (source.Source, error)
	newStore  func() (storage.Store, error)

	mu    sync.Mutex
	src   source.Source
	store storage.Store
}

func newAppClient() *appClient {
	return &appClient{
		newSource: source.NewFromConfig,
		newStore:  storage.NewFromConfig,
	}
}

func (a *appClient) Source() (source.Source, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.src == nil {
		src, err := a.newSource()
		if err != nil {
			return nil, err
		}
		a.src = src
	}
	return a.src, nil
}

func (a *appClient) Store() (storage.Store, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.store == nil {
		store, err := a.newStore()
		if err != nil {
			return nil, err
		}
		a.store = store
	}
	return a.store, nil
}

func (a *appClient) Defaults() settings.Defaults {
	return settings.DefaultsFromConfig()
}

// Close releases the store if one was opened.
func (a *appClient) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

var client = newAppClient()
