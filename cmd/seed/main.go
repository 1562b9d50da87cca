package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"libraryapi/internal/author"
	"libraryapi/internal/book"
	"libraryapi/internal/category"
	"libraryapi/internal/config"
	"libraryapi/internal/logging"
	"libraryapi/internal/platform/database"
)

type seedBook struct {
	isbn, nom, description string
	author, category       string
}

var (
	seedAuthors    = []string{"Victor Hugo", "Émile Zola", "Albert Camus", "Marguerite Yourcenar"}
	seedCategories = []string{"Roman", "Essai", "Théâtre"}
	seedBooks      = []seedBook{
		{"978-2-07-040850-4", "Les Misérables", "Fresque sociale du XIXe siècle.", "Victor Hugo", "Roman"},
		{"978-2-253-00411-3", "Notre-Dame de Paris", "Roman historique autour de la cathédrale.", "Victor Hugo", "Roman"},
		{"978-2-07-036002-4", "Germinal", "La grève des mineurs du Nord.", "Émile Zola", "Roman"},
		{"978-2-07-036024-6", "L'Étranger", "Meursault et l'absurde.", "Albert Camus", "Roman"},
		{"978-2-07-032288-6", "Le Mythe de Sisyphe", "Essai sur l'absurde.", "Albert Camus", "Essai"},
		{"978-2-07-036099-4", "Caligula", "Pièce en quatre actes.", "Albert Camus", "Théâtre"},
		{"978-2-07-036921-8", "Mémoires d'Hadrien", "Autobiographie fictive d'un empereur.", "Marguerite Yourcenar", "Roman"},
	}
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	executor := database.NewExecutor(db, cfg.Database.QueryTimeout, log.Named("db"))
	return seed(ctx, executor, log)
}

// seed inserts the demo catalog. Rows that already exist are left alone so
// the command can be run repeatedly.
func seed(ctx context.Context, executor *database.Executor, log *zap.Logger) error {
	authors := author.NewService(author.NewSQLRepo(executor))
	categories := category.NewService(category.NewSQLRepo(executor))
	books := book.NewService(book.NewSQLRepo(executor))

	var created int
	for _, nom := range seedAuthors {
		_, err := authors.GetByName(ctx, nom)
		if err == nil {
			continue
		}
		if !errors.Is(err, author.ErrNotFound) {
			return err
		}
		if _, err := authors.Create(ctx, nom); err != nil {
			return fmt.Errorf("seed author %q: %w", nom, err)
		}
		created++
	}

	for _, nom := range seedCategories {
		_, err := categories.GetByName(ctx, nom)
		if err == nil {
			continue
		}
		if !errors.Is(err, category.ErrNotFound) {
			return err
		}
		if _, err := categories.Create(ctx, nom); err != nil {
			return fmt.Errorf("seed category %q: %w", nom, err)
		}
		created++
	}

	for _, b := range seedBooks {
		_, err := books.GetByISBN(ctx, b.isbn)
		if err == nil {
			continue
		}
		if !errors.Is(err, book.ErrNotFound) {
			return err
		}
		in := book.CreateInput{
			ISBN:         b.isbn,
			Nom:          b.nom,
			Description:  b.description,
			AuthorName:   b.author,
			CategoryName: b.category,
		}
		if err := books.Create(ctx, in); err != nil {
			return fmt.Errorf("seed book %q: %w", b.isbn, err)
		}
		created++
	}

	log.Info("seed complete", zap.Int("created", created))
	return nil
}
