// Package database define a conexão com o armazenamento relacional e as diferenças entre dialetos
package database

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Dialect isola as diferenças de SQL entre os bancos suportados
type Dialect interface {
	Name() string
	Placeholder() squirrel.PlaceholderFormat
	// MonthKey retorna uma expressão yyyy-mm para a coluna de data
	MonthKey(column string) string
	// DayDiff retorna uma expressão com a diferença em dias entre duas colunas de data
	DayDiff(later, earlier string) string
	// Schema retorna os comandos de criação de tabelas e índices
	Schema() []string
}

type Connection struct {
	*sqlx.DB
	Dialect Dialect
}

func NewConnection(db *sqlx.DB, dialect Dialect) *Connection {
	return &Connection{DB: db, Dialect: dialect}
}

// Builder retorna um construtor de queries com o placeholder do dialeto
func (c *Connection) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(c.Dialect.Placeholder())
}

// Ping verifica se o banco responde; usado pelo healthcheck
func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Migrate cria as tabelas e índices caso ainda não existam
func (c *Connection) Migrate(ctx context.Context) error {
	for _, stmt := range c.Dialect.Schema() {
		if _, err := c.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao aplicar schema (%s): %w", c.Dialect.Name(), err)
		}
	}
	return nil
}

// RunInTransaction executa fn em uma transação, com rollback em erro ou panic
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := c.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
