// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package app wires the ordering API together.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/z5labs/ordering"
	"github.com/z5labs/ordering/health"
	"github.com/z5labs/ordering/internal/endpoint"
	"github.com/z5labs/ordering/jsonx"
	"github.com/z5labs/ordering/order"
	"github.com/z5labs/ordering/result"
	"github.com/z5labs/ordering/rest"

	"github.com/google/uuid"
)

// Config is the configuration of the ordering API.
type Config struct {
	rest.Config `config:",squash"`

	Orders struct {
		// Seed lists the IDs of orders present at startup.
		Seed []string `config:"seed" validate:"dive,uuid"`

		// SeedFile is a JSON document of the form {"orders": [{"id": "<guid>"}]}
		// whose orders are added to the seed.
		SeedFile string `config:"seed_file"`
	} `config:"orders"`
}

// Init builds the ordering [rest.Api].
func Init(ctx context.Context, cfg Config) (*rest.Api, error) {
	log := ordering.Logger("github.com/z5labs/ordering/internal/app")

	seed := make([]order.Order, 0, len(cfg.Orders.Seed))
	for _, s := range cfg.Orders.Seed {
		u, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		seed = append(seed, order.Order{ID: order.IDFromUUID(u)})
	}
	if cfg.Orders.SeedFile != "" {
		orders, err := readSeedFile(cfg.Orders.SeedFile)
		if err != nil {
			return nil, err
		}
		seed = append(seed, orders...)
	}
	store := order.NewStore(seed...)
	log.InfoContext(ctx, "seeded order store", slog.Int("orders", store.Len()))

	ready := &health.Binary{}
	ready.MarkHealthy()

	api := rest.NewApi(
		cfg.OpenApi.Title,
		cfg.OpenApi.Version,
		rest.Readiness(ready),
		endpoint.GetOrder(store),
		endpoint.DeleteOrder(store),
	)
	return api, nil
}

func readSeedFile(name string) ([]order.Order, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := jsonx.ParseObject(f)
	if err != nil {
		return nil, fmt.Errorf("app: failed to parse seed file %s: %w", name, err)
	}
	objs, err := doc.GetObjectArray("orders")
	if err != nil {
		return nil, fmt.Errorf("app: invalid seed file %s: %w", name, err)
	}

	orders := result.Traverse(objs, func(i int, obj jsonx.Object) result.Validation[order.Order] {
		return result.ToValidation(order.FromJSON(obj))
	})
	seed, ok := orders.Value()
	if !ok {
		return nil, fmt.Errorf("app: invalid seed file %s: %s", name, strings.Join(orders.Errors(), " "))
	}
	return seed, nil
}
