package tubedb

import (
	"context"
	"database/sql"
	"log"
	"time"

	"tubemap.nanjingmetro.org/internal/mapdoc"
)

// Client is the main entry point for the network index
type Client struct {
	config        Config
	DB            *sql.DB
	Queries       *Queries
	importRuntime time.Duration
}

// NewClient creates a new Client with the provided configuration
func NewClient(config Config) (*Client, error) {
	db, err := createDB(config)
	if err != nil {
		return nil, err
	}
	if config.verbose {
		log.Println("Successfully created tables")
	}

	client := &Client{
		config:  config,
		DB:      db,
		Queries: New(db),
	}
	return client, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// ImportDocument stores a loaded map document in the database. The import
// runs in one transaction; the index either reflects the whole network or
// nothing.
func (c *Client) ImportDocument(ctx context.Context, doc *mapdoc.Document) error {
	start := time.Now()

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() // nolint:errcheck

	if err := insertLines(ctx, tx, doc.Lines); err != nil {
		return err
	}
	if err := insertStations(ctx, tx, doc.Stations); err != nil {
		return err
	}
	if err := insertLineStations(ctx, tx, doc.Lines); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	c.importRuntime = time.Since(start)
	if c.config.verbose {
		log.Printf("Imported %d stations and %d lines in %s",
			len(doc.Stations), len(doc.Lines), c.importRuntime)
	}

	return nil
}
