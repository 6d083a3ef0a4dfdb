// Package mocks contains mockery-generated test doubles for the port interfaces.
//
//go:generate mockery --name=Engine --structname=MockEngine --dir=.. --output=. --outpkg=mocks --with-expecter --filename=mock_engine.go
//go:generate mockery --name=Surface --structname=MockSurface --dir=.. --output=. --outpkg=mocks --with-expecter --filename=mock_surface.go
package mocks
