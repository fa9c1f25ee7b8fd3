package app

import (
	"net/http"

	"github.com/educhain/educhain-api/internal/handler"
	"github.com/educhain/educhain-api/internal/middleware"
	"github.com/educhain/educhain-api/internal/repository"
	"github.com/educhain/educhain-api/internal/trust"
)

func (app *Application) routes() http.Handler {
	mux := http.NewServeMux()

	middlewareRepo := middleware.New(app.errorHandler, app.Logger)

	studentRepo := repository.NewStudentRepository(app.DB)
	kycRepo := repository.NewKycRepository(app.DB)
	proofRepo := repository.NewProofRepository(app.DB)
	donationRepo := repository.NewDonationRepository(app.DB)
	csrRepo := repository.NewCsrRepository(app.DB)

	trustEngine := trust.New(&trust.Engine{
		StudentRepo: studentRepo,
		KycRepo:     kycRepo,
		ProofRepo:   proofRepo,
	})

	healthHandler := handler.NewHealthCheckHandler(app.DB, app.errorHandler)

	studentHandler := handler.NewStudentHandler(&handler.StudentHandler{
		StudentRepo: studentRepo,
		ErrHandler:  app.errorHandler,
	})

	kycHandler := handler.NewKycHandler(&handler.KycHandler{
		KycRepo:     kycRepo,
		StudentRepo: studentRepo,
		TrustEngine: trustEngine,
		Kafka:       app.Kafka,
		Helper:      app.helper,
		ErrHandler:  app.errorHandler,
	})

	proofHandler := handler.NewProofHandler(&handler.ProofHandler{
		ProofRepo:   proofRepo,
		StudentRepo: studentRepo,
		TrustEngine: trustEngine,
		ErrHandler:  app.errorHandler,
	})

	donationHandler := handler.NewDonationHandler(&handler.DonationHandler{
		DonationRepo: donationRepo,
		Kafka:        app.Kafka,
		Helper:       app.helper,
		ErrHandler:   app.errorHandler,
	})

	discoveryHandler := handler.NewDiscoveryHandler(&handler.DiscoveryHandler{
		StudentRepo: studentRepo,
		Cache:       app.Cache,
		ErrHandler:  app.errorHandler,
	})

	trustHandler := handler.NewTrustHandler(&handler.TrustHandler{
		TrustEngine: trustEngine,
		ErrHandler:  app.errorHandler,
	})

	schemaHandler := handler.NewSchemaHandler(&handler.SchemaHandler{
		ErrHandler: app.errorHandler,
	})

	csrHandler := handler.NewCsrHandler(&handler.CsrHandler{
		CsrRepo:    csrRepo,
		ErrHandler: app.errorHandler,
	})

	routeHandler := handler.NewRouteHandler(&handler.RouteHandler{
		ErrHandler:   app.errorHandler,
		FileUploader: app.FileUploader,
	})

	mux.HandleFunc("GET /{$}", healthHandler.HandleIndex)
	mux.HandleFunc("GET /test", healthHandler.HandleTestDatabase)

	mux.HandleFunc("POST /students", studentHandler.HandleCreateStudent)
	mux.HandleFunc("GET /students", studentHandler.HandleListStudents)

	mux.HandleFunc("POST /kyc", kycHandler.HandleSubmitKyc)
	mux.HandleFunc("POST /proofs", proofHandler.HandleSubmitProof)

	mux.HandleFunc("POST /donations/initiate", donationHandler.HandleInitiateDonation)
	mux.HandleFunc("POST /donations/webhook", donationHandler.HandleDonationWebhook)
	mux.HandleFunc("POST /blockchain/record/{donationId}", donationHandler.HandleRecordBlockchainTx)

	mux.HandleFunc("GET /discover", discoveryHandler.HandleDiscoverStudents)
	mux.HandleFunc("GET /heatmap", discoveryHandler.HandleHeatmap)

	mux.HandleFunc("GET /trust/{studentId}", trustHandler.HandleTrustScore)

	mux.HandleFunc("GET /schema", schemaHandler.HandleSchema)

	mux.HandleFunc("POST /uploads", routeHandler.HandleUploadFile)

	mux.HandleFunc("POST /csr-projects", csrHandler.HandleCreateCsrProject)

	return middlewareRepo.LogAccess(middlewareRepo.RecoverPanic(middlewareRepo.Cors(mux)))
}
