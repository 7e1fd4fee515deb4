// Copyright 2026 The Cacheb Authors
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"sync"

	"github.com/numbyfinance/cacheb/lib/asset"
	"github.com/numbyfinance/cacheb/lib/fingerprint"
)

// fingerprintAll computes content fingerprints for every asset,
// reading up to workers files concurrently. Fingerprinting is
// embarrassingly parallel: each goroutine writes only its own asset's
// Fingerprint field and its own slot of the error slice, so the
// assets slice keeps the collector's deterministic order and the
// returned error is the first by that order — output never depends on
// goroutine scheduling.
func fingerprintAll(assets []*asset.Asset, workers int) error {
	if workers < 1 {
		workers = 1
	}

	semaphore := make(chan struct{}, workers)
	errs := make([]error, len(assets))
	var wg sync.WaitGroup

	for i, a := range assets {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(i int, a *asset.Asset) {
			defer wg.Done()
			defer func() { <-semaphore }()

			token, err := fingerprint.File(a.AbsPath)
			if err != nil {
				errs[i] = err
				return
			}
			a.Fingerprint = token
		}(i, a)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
