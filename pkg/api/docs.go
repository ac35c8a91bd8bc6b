// Package api provides the REST API of the Aldus data service
// @title Aldus API
// @version 1.0
// @description Read-only API over the curated Aldus datasets: accounts, codes, contracts, modules,
// @description assets and entities per chain/network, plus the global chain and asset registries.
// @contact.name Alles Labs
// @contact.url https://github.com/alleslabs/aldus
// @license.name MIT
// @host localhost:8080
// @basePath /v1
// @schemes http https
package api
