package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boutique/internal/config"
	"boutique/internal/domain/model"
	"boutique/internal/handler"
	"boutique/internal/infra/db"
	infraRepo "boutique/internal/infra/repository"
	"boutique/internal/notify"
	"boutique/internal/server"
	"boutique/internal/usecase"
	auth "boutique/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// 管理セッションcookie用のJWT
type jwtIssuer struct {
	secret []byte
	ttl    time.Duration
}

func (i *jwtIssuer) Issue(username string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.ttl)

	claims := jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	// .envはローカル用、なければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		slog.Error("db connect failed", "error", err)
		os.Exit(1)
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.ProductImage{},
		&model.ProductIngredient{},
		&model.ProductTranslation{},
		&model.IngredientTranslation{},
		&model.Order{},
		&model.OrderItem{},
		&model.Subscriber{},
		&model.AdminUser{},
		&model.ViewCounter{},
	); err != nil {
		slog.Error("db migrate failed", "error", err)
		os.Exit(1)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	imageRepo := infraRepo.NewProductImageGormRepository(gormDB)
	ingredientRepo := infraRepo.NewProductIngredientGormRepository(gormDB)
	translationRepo := infraRepo.NewProductTranslationGormRepository(gormDB)
	ingredientTranslationRepo := infraRepo.NewIngredientTranslationGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	subscriberRepo := infraRepo.NewSubscriberGormRepository(gormDB)
	adminUserRepo := infraRepo.NewAdminUserGormRepository(gormDB)
	viewCounterRepo := infraRepo.NewViewCounterGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	verifier := auth.NewBcryptPasswordVerifier()
	issuer := &jwtIssuer{
		secret: []byte(cfg.JWTSecret),
		ttl:    24 * time.Hour,
	}

	// SMTP未設定ならnil（通知なし）
	var mailer usecase.OrderMailer
	if m := notify.NewOrderEmailNotifier(cfg); m != nil {
		mailer = m
	}

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(
		productRepo, imageRepo, ingredientRepo, translationRepo, ingredientTranslationRepo,
		txManager, idGen,
	)
	orderUC := usecase.NewOrderUsecase(orderRepo, orderItemRepo, productRepo, txManager, idGen, mailer)
	subscriberUC := usecase.NewSubscriberUsecase(subscriberRepo, idGen)
	statsUC := usecase.NewStatsUsecase(productRepo, orderRepo, subscriberRepo, viewCounterRepo)
	loginUC := auth.NewAdminLoginUsecase(adminUserRepo, verifier, issuer, clock)

	//Handler生成
	handlers := server.Handlers{
		Product:         handler.NewProductHandler(catalogUC),
		Order:           handler.NewOrderHandler(orderUC),
		Newsletter:      handler.NewNewsletterHandler(subscriberUC),
		Views:           handler.NewViewsHandler(statsUC),
		Auth:            handler.NewAuthHandler(loginUC, cfg),
		AdminProduct:    handler.NewAdminProductHandler(catalogUC),
		AdminOrder:      handler.NewAdminOrderHandler(orderUC),
		AdminSubscriber: handler.NewAdminSubscriberHandler(subscriberUC),
		AdminStats:      handler.NewAdminStatsHandler(statsUC),
	}

	e := server.New(cfg, handlers)

	//Server起動
	go func() {
		if err := server.Start(e, cfg.Port); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	//SIGINT/SIGTERMでgraceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx, e); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	if err := db.Close(gormDB); err != nil {
		slog.Error("db close failed", "error", err)
	}
}
