/*
Package e2e holds the end-to-end tests of the audiobook scanner.

# Package Structure

	test/e2e/
	├── doc.go              This file
	├── e2e_suite_test.go   Ginkgo runner, global zap logger
	├── scan_test.go        Specs: scan lifecycle, listing, authentication
	├── infra/
	│   ├── infra.go        ScannerServer (full stack on a real listener) + CreateLibrary
	│   └── token.go        TokenIssuer (HS256 secret file + token signing)
	└── service/
	    └── service.go      ScannerSvc, HTTP client for the /api/v1 endpoints

# Infrastructure

ScannerServer wires store, services, handlers and server exactly like the
serve command does, with an in-memory DuckDB, and exposes it through
httptest. Libraries are plain temporary directories; audio files are filled
with zero bytes so metadata comes from the path.

	scanner, err := infra.StartScanner(cfg)
	defer scanner.Stop()
	svc := service.NewScannerService(scanner.URL())

# Authentication

TokenIssuer writes a random secret to a file used as Auth.SecretFilePath and
signs tokens for any subject and lifetime:

	token, _ := issuer.GenerateToken("tester", time.Hour)
	status, err := svc.WithToken(token).Status()

# Running

	go test ./test/e2e/... -ginkgo.v
*/
package e2e
