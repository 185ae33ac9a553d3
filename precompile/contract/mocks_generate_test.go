// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

//go:generate go run go.uber.org/mock/mockgen@v0.5 -package=${GOPACKAGE} -destination=mocks.go . AccessibleState,BlockContext
