// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/assetregistry/config"
	"github.com/ava-labs/assetregistry/core/state"
	"github.com/ava-labs/assetregistry/database"
	"github.com/ava-labs/assetregistry/database/factory"
	"github.com/ava-labs/assetregistry/database/prefixdb"
	"github.com/ava-labs/assetregistry/precompile/dispatch"
	"github.com/ava-labs/assetregistry/precompile/metered"
	"github.com/ava-labs/assetregistry/utils/logging"
)

// statePrefix namespaces the registry state in the database.
var statePrefix = []byte("registry")

// node holds the resources shared by the commands that touch the database.
type node struct {
	log        logging.Logger
	logFactory logging.Factory
	registry   *prometheus.Registry
	db         database.Database
	dispatcher *dispatch.Dispatcher
}

func newNode(c *cobra.Command) (*node, error) {
	v, err := config.BuildViper(c.Flags())
	if err != nil {
		return nil, err
	}
	cfg, err := config.GetConfig(v)
	if err != nil {
		return nil, err
	}
	upgrades, err := cfg.ReadUpgradeConfig()
	if err != nil {
		return nil, err
	}

	logFactory := logging.NewFactory(cfg.Logging)
	log, err := logFactory.Make(config.AppName)
	if err != nil {
		logFactory.Close()
		return nil, err
	}

	var (
		registry *prometheus.Registry
		dbReg    prometheus.Registerer
		metrics  *metered.Metrics
	)
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		dbReg = prometheus.WrapRegistererWithPrefix("db_", registry)
		metrics, err = metered.NewMetrics(prometheus.WrapRegistererWithPrefix("precompile_", registry))
		if err != nil {
			logFactory.Close()
			return nil, err
		}
	}

	db, err := factory.New(cfg.Database, log, dbReg)
	if err != nil {
		logFactory.Close()
		return nil, err
	}

	return &node{
		log:        log,
		logFactory: logFactory,
		registry:   registry,
		db:         db,
		dispatcher: dispatch.New(log, upgrades, metrics),
	}, nil
}

func (n *node) state() *state.StateDB {
	return state.New(prefixdb.New(statePrefix, n.db))
}

func (n *node) close() error {
	n.logMetrics()

	err := n.db.Close()
	n.log.Info("closed database", zap.Error(err))
	n.logFactory.Close()
	return err
}

func (n *node) logMetrics() {
	if n.registry == nil {
		return
	}
	families, err := n.registry.Gather()
	if err != nil {
		n.log.Warn("failed to gather metrics", zap.Error(err))
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%s", label.GetName(), label.GetValue()))
			}
			n.log.Info("metric",
				zap.String("name", family.GetName()),
				zap.String("labels", strings.Join(labels, ",")),
				zap.Float64("value", metric.GetCounter().GetValue()),
			)
		}
	}
}
