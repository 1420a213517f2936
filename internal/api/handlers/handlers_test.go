package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"FoodRescue-Backend/internal/api/handlers"
	"FoodRescue-Backend/internal/api/routes"
	"FoodRescue-Backend/internal/middleware"
	"FoodRescue-Backend/internal/utils"
	"FoodRescue-Backend/internal/utils/storage"
	"FoodRescue-Backend/pkg/ai"
	"FoodRescue-Backend/pkg/chat"
	"FoodRescue-Backend/pkg/claim"
	"FoodRescue-Backend/pkg/jwt"
	"FoodRescue-Backend/pkg/listing"
	"FoodRescue-Backend/pkg/organization"
	"FoodRescue-Backend/pkg/ratelimit"
	"FoodRescue-Backend/pkg/rating"
	"FoodRescue-Backend/pkg/sensor"
	"FoodRescue-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires the full route table against in-memory repositories, local
// disk uploads and an unconfigured AI gateway.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	utils.InitValidator()

	app := fiber.New(fiber.Config{BodyLimit: storage.MaxUploadSize})

	uploads, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	listingRepo := listing.NewMemoryListingRepository()
	sensorRepo := sensor.NewMemorySensorRepository()
	claimRepo := claim.NewMemoryClaimRepository()
	orgRepo := organization.NewMemoryOrganizationRepository()
	ratingRepo := rating.NewMemoryRatingRepository()
	userRepo := user.NewMemoryUserRepository()

	gateway := ai.NewGeminiGateway("", "")
	jwtService := jwt.NewJWTService()

	listingService := listing.NewListingService(listingRepo, uploads)
	sensorService := sensor.NewSensorService(sensorRepo)
	claimService := claim.NewClaimService(claimRepo, listingRepo, nil)
	orgService := organization.NewOrganizationService(orgRepo)
	ratingService := rating.NewRatingService(ratingRepo, gateway)
	userService := user.NewUserService(userRepo, jwtService)
	chatService := chat.NewChatService(gateway)

	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         handlers.NewUserHandler(userService, utils.Validate),
		ListingHandler:      handlers.NewListingHandler(listingService, utils.Validate),
		SensorHandler:       handlers.NewSensorHandler(sensorService, utils.Validate),
		ClaimHandler:        handlers.NewClaimHandler(claimService, utils.Validate),
		OrganizationHandler: handlers.NewOrganizationHandler(orgService, utils.Validate),
		RatingHandler:       handlers.NewRatingHandler(ratingService, utils.Validate),
		ChatHandler:         handlers.NewChatHandler(chatService, ratelimit.NewLimiter(10, 60*time.Second), utils.Validate),
		Middleware:          middleware.NewMiddleware(),
		JWTService:          jwtService,
		UploadDir:           t.TempDir(),
	}
	routesConfig.Setup()

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func validListingFields(donorID string) map[string]string {
	start := time.Now().Add(time.Hour).UTC()
	return map[string]string{
		"title":           "Day-old sourdough",
		"description":     "Six loaves from this morning's bake",
		"quantity":        "6 loaves",
		"category":        "bakery",
		"location":        "Main St Bakery",
		"latitude":        "52.52",
		"longitude":       "13.405",
		"pickupTimeStart": start.Format(time.RFC3339),
		"pickupTimeEnd":   start.Add(2 * time.Hour).Format(time.RFC3339),
		"donorId":         donorID,
	}
}

func postListingForm(t *testing.T, app *fiber.App, fields map[string]string, imageName string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader([]byte("fake image bytes")))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/food-listings", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func createListing(t *testing.T, app *fiber.App) map[string]interface{} {
	t.Helper()
	resp := postListingForm(t, app, validListingFields(uuid.NewString()), "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decodeMap(t, resp)
}

func TestCreateListingReturnsCreatedListing(t *testing.T) {
	app := newTestApp(t)

	donorID := uuid.NewString()
	fields := validListingFields(donorID)
	fields["freshnessScore"] = "92"
	fields["qualityScore"] = "77"
	fields["defectsDetected"] = `["bruising","soft spots"]`
	fields["aiAnalysis"] = `{"summary":"looks fresh"}`

	resp := postListingForm(t, app, fields, "loaves.jpg")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "Day-old sourdough", body["title"])
	assert.Equal(t, "bakery", body["category"])
	assert.Equal(t, "available", body["status"])
	assert.Equal(t, donorID, body["donorId"])
	assert.Equal(t, 92.0, body["freshnessScore"])
	assert.Equal(t, 77.0, body["qualityScore"])
	assert.Equal(t, []interface{}{"bruising", "soft spots"}, body["defectsDetected"])
	assert.NotEmpty(t, body["createdAt"])

	imageURL, _ := body["imageUrl"].(string)
	assert.True(t, strings.HasPrefix(imageURL, "/uploads/"), "got %q", imageURL)
	assert.True(t, strings.HasSuffix(imageURL, ".jpg"), "got %q", imageURL)
}

func TestCreateListingDefaultsScoresWhenUnparseable(t *testing.T) {
	app := newTestApp(t)

	fields := validListingFields(uuid.NewString())
	fields["freshnessScore"] = "not-a-number"
	// qualityScore omitted entirely

	resp := postListingForm(t, app, fields, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, 85.0, body["freshnessScore"])
	assert.Equal(t, 85.0, body["qualityScore"])
	assert.Equal(t, []interface{}{}, body["defectsDetected"])
}

func TestCreateListingAcceptsZeroCoordinates(t *testing.T) {
	app := newTestApp(t)

	// Null Island is a legal drop-off point.
	fields := validListingFields(uuid.NewString())
	fields["latitude"] = "0"
	fields["longitude"] = "0"

	resp := postListingForm(t, app, fields, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, 0.0, body["latitude"])
	assert.Equal(t, 0.0, body["longitude"])
}

func TestCreateListingRejectsInvertedPickupWindow(t *testing.T) {
	app := newTestApp(t)

	fields := validListingFields(uuid.NewString())
	fields["pickupTimeStart"], fields["pickupTimeEnd"] = fields["pickupTimeEnd"], fields["pickupTimeStart"]

	resp := postListingForm(t, app, fields, "")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, decodeMap(t, resp)["error"])
}

func TestCreateListingRejectsBadCoordinates(t *testing.T) {
	app := newTestApp(t)

	fields := validListingFields(uuid.NewString())
	fields["latitude"] = "north-ish"

	resp := postListingForm(t, app, fields, "")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateListingRejectsNonImageUpload(t *testing.T) {
	app := newTestApp(t)

	resp := postListingForm(t, app, validListingFields(uuid.NewString()), "notes.txt")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateListingValidationProducesDetails(t *testing.T) {
	app := newTestApp(t)

	fields := validListingFields(uuid.NewString())
	fields["title"] = ""

	resp := postListingForm(t, app, fields, "")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.NotEmpty(t, body["error"])
	assert.NotEmpty(t, body["details"])
}

func TestGetListingUnknownIDReturns404(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/food-listings/"+uuid.NewString(), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "food listing not found", decodeMap(t, resp)["error"])
}

func TestUpdateListingStatusIsAnAllowList(t *testing.T) {
	app := newTestApp(t)
	created := createListing(t, app)
	id := created["id"].(string)
	donorID := created["donorId"].(string)

	// Without a status field the patch is rejected outright.
	resp := doJSON(t, app, fiber.MethodPatch, "/api/food-listings/"+id,
		fmt.Sprintf(`{"donorId":%q}`, uuid.NewString()))
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// With a status, any extra fields are silently dropped.
	resp = doJSON(t, app, fiber.MethodPatch, "/api/food-listings/"+id,
		fmt.Sprintf(`{"status":"claimed","donorId":%q,"title":"hijacked"}`, uuid.NewString()))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, "claimed", body["status"])
	assert.Equal(t, donorID, body["donorId"])
	assert.Equal(t, created["title"], body["title"])
}

func TestUpdateListingRejectsUnknownStatus(t *testing.T) {
	app := newTestApp(t)
	created := createListing(t, app)

	resp := doJSON(t, app, fiber.MethodPatch, "/api/food-listings/"+created["id"].(string),
		`{"status":"expired"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateListingUnknownIDReturns404(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPatch, "/api/food-listings/"+uuid.NewString(),
		`{"status":"available"}`)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteListingIsNotIdempotent(t *testing.T) {
	app := newTestApp(t)
	created := createListing(t, app)
	path := "/api/food-listings/" + created["id"].(string)

	req := httptest.NewRequest(fiber.MethodDelete, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodDelete, path, nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestClaimTakesListingOffTheAvailableList(t *testing.T) {
	app := newTestApp(t)
	created := createListing(t, app)
	id := created["id"].(string)

	resp := doJSON(t, app, fiber.MethodPost, "/api/claims",
		fmt.Sprintf(`{"listingId":%q,"claimerName":"Sam","claimerContact":"sam@example.com"}`, id))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	claimBody := decodeMap(t, resp)
	assert.Equal(t, "pending", claimBody["status"])
	assert.Equal(t, id, claimBody["listingId"])

	// Gone from the browse list.
	req := httptest.NewRequest(fiber.MethodGet, "/api/food-listings", nil)
	listResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, listResp.StatusCode)
	for _, item := range decodeList(t, listResp) {
		assert.NotEqual(t, id, item["id"])
	}

	// Still reachable directly, now claimed.
	req = httptest.NewRequest(fiber.MethodGet, "/api/food-listings/"+id, nil)
	getResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, getResp.StatusCode)
	assert.Equal(t, "claimed", decodeMap(t, getResp)["status"])

	// And listed under its claims.
	req = httptest.NewRequest(fiber.MethodGet, "/api/claims/"+id, nil)
	claimsResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, claimsResp.StatusCode)
	claims := decodeList(t, claimsResp)
	require.Len(t, claims, 1)
	assert.Equal(t, "Sam", claims[0]["claimerName"])
}

func TestClaimUnknownListingReturns404(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/claims",
		fmt.Sprintf(`{"listingId":%q,"claimerName":"Sam","claimerContact":"555-0100"}`, uuid.NewString()))
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestConfirmClaim(t *testing.T) {
	app := newTestApp(t)
	created := createListing(t, app)

	resp := doJSON(t, app, fiber.MethodPost, "/api/claims",
		fmt.Sprintf(`{"listingId":%q,"claimerName":"Sam","claimerContact":"555-0100"}`, created["id"]))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	claimID := decodeMap(t, resp)["id"].(string)

	resp = doJSON(t, app, fiber.MethodPatch, "/api/claims/"+claimID, `{"status":"confirmed"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "confirmed", decodeMap(t, resp)["status"])

	// pending is not a valid target through this endpoint
	resp = doJSON(t, app, fiber.MethodPatch, "/api/claims/"+claimID, `{"status":"pending"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSensorDataNewestFirstAndScopedToListing(t *testing.T) {
	app := newTestApp(t)
	first := createListing(t, app)
	second := createListing(t, app)

	for i, temperature := range []float64{4.0, 4.5, 5.0} {
		resp := doJSON(t, app, fiber.MethodPost, "/api/sensor-data",
			fmt.Sprintf(`{"listingId":%q,"temperature":%f,"humidity":%f}`, first["id"], temperature, 60.0+float64(i)))
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}
	resp := doJSON(t, app, fiber.MethodPost, "/api/sensor-data",
		fmt.Sprintf(`{"listingId":%q,"temperature":12.0,"humidity":40.0}`, second["id"]))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(fiber.MethodGet, fmt.Sprintf("/api/sensor-data/%s", first["id"]), nil)
	getResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, getResp.StatusCode)

	readings := decodeList(t, getResp)
	require.Len(t, readings, 3)
	assert.Equal(t, 5.0, readings[0]["temperature"])
	assert.Equal(t, 4.5, readings[1]["temperature"])
	assert.Equal(t, 4.0, readings[2]["temperature"])
	for _, reading := range readings {
		assert.Equal(t, first["id"], reading["listingId"])
		assert.NotEmpty(t, reading["timestamp"])
	}
}

func TestCreateSensorDataRequiresBothReadings(t *testing.T) {
	app := newTestApp(t)
	created := createListing(t, app)

	resp := doJSON(t, app, fiber.MethodPost, "/api/sensor-data",
		fmt.Sprintf(`{"listingId":%q,"humidity":55.0}`, created["id"]))
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Zero is a legitimate reading, not a missing one.
	resp = doJSON(t, app, fiber.MethodPost, "/api/sensor-data",
		fmt.Sprintf(`{"listingId":%q,"temperature":0.0,"humidity":55.0}`, created["id"]))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, 0.0, decodeMap(t, resp)["temperature"])
}

func TestOrganizationRoundTrip(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/organizations", `{
		"name": "City Harvest",
		"type": "food bank",
		"description": "Redistributes surplus food downtown",
		"location": "12 Dock Rd",
		"latitude": 40.7,
		"longitude": -74.0,
		"contactEmail": "hello@cityharvest.example",
		"contactPhone": "555-0101"
	}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	org := decodeMap(t, resp)
	assert.Equal(t, "City Harvest", org["name"])
	assert.Equal(t, 0.0, org["verified"])

	req := httptest.NewRequest(fiber.MethodGet, "/api/organizations/"+org["id"].(string), nil)
	getResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, getResp.StatusCode)
	assert.Equal(t, "food bank", decodeMap(t, getResp)["type"])

	req = httptest.NewRequest(fiber.MethodGet, "/api/organizations/"+uuid.NewString(), nil)
	missResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, missResp.StatusCode)
}

func TestCreateOrganizationCoordinates(t *testing.T) {
	app := newTestApp(t)

	// Zero is a position, not an omission.
	resp := doJSON(t, app, fiber.MethodPost, "/api/organizations", `{
		"name": "Null Island Pantry",
		"type": "food bank",
		"description": "Serves the gulf of Guinea",
		"location": "0,0",
		"latitude": 0,
		"longitude": 0,
		"contactEmail": "pantry@example.org",
		"contactPhone": "555-0102"
	}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, 0.0, body["latitude"])
	assert.Equal(t, 0.0, body["longitude"])

	// Absent coordinates are still rejected.
	resp = doJSON(t, app, fiber.MethodPost, "/api/organizations", `{
		"name": "Nowhere Pantry",
		"type": "food bank",
		"description": "No coordinates at all",
		"location": "unknown",
		"contactEmail": "nowhere@example.org",
		"contactPhone": "555-0103"
	}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateSupplierRatingWithoutGateway(t *testing.T) {
	app := newTestApp(t)

	orgID := uuid.NewString()
	resp := doJSON(t, app, fiber.MethodPost, "/api/supplier-ratings", fmt.Sprintf(`{
		"supplierId": %q,
		"organizationId": %q,
		"overallRating": 4.5,
		"reliabilityScore": 4.0,
		"qualityScore": 4.8,
		"totalDonations": 12
	}`, uuid.NewString(), orgID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, 4.5, body["overallRating"])
	assert.Nil(t, body["aiAnalysis"], "no analysis without a configured gateway")

	req := httptest.NewRequest(fiber.MethodGet, "/api/organizations/"+orgID+"/supplier-ratings", nil)
	listResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, listResp.StatusCode)
	assert.Len(t, decodeList(t, listResp), 1)
}

func TestChatValidation(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/chat", `{"messages":[]}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/chat", `{"messages":[{"role":"user","content":""}]}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/chat", `{"messages":[{"role":"wizard","content":"hi"}]}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// 21 messages is one past the conversation cap.
	messages := make([]string, 21)
	for i := range messages {
		messages[i] = `{"role":"user","content":"hello"}`
	}
	resp = doJSON(t, app, fiber.MethodPost, "/api/chat",
		`{"messages":[`+strings.Join(messages, ",")+`]}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestChatWithoutGatewayReturns503(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/chat",
		`{"messages":[{"role":"user","content":"is week-old bread safe?"}]}`)
	require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "AI assistant is temporarily unavailable", decodeMap(t, resp)["error"])
}

func TestChatRateLimitKicksInAfterTenRequests(t *testing.T) {
	app := newTestApp(t)
	body := `{"messages":[{"role":"user","content":"hi"}]}`

	for i := 0; i < 10; i++ {
		resp := doJSON(t, app, fiber.MethodPost, "/api/chat", body)
		require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode, "request %d", i+1)
	}

	resp := doJSON(t, app, fiber.MethodPost, "/api/chat", body)
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	// Over-limit requests do not open a fresh window.
	resp = doJSON(t, app, fiber.MethodPost, "/api/chat", body)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestDetectFoodFailuresAreA500(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "plate.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/detect-food", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestRegisterLoginAndMe(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/users/register",
		`{"username":"bakery-anne","password":"secret123"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	registered := decodeMap(t, resp)
	assert.Equal(t, "bakery-anne", registered["username"])
	assert.NotEmpty(t, registered["id"])

	// Duplicate usernames are rejected.
	resp = doJSON(t, app, fiber.MethodPost, "/api/users/register",
		`{"username":"bakery-anne","password":"different456"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/users/login",
		`{"username":"bakery-anne","password":"wrong"}`)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/users/login",
		`{"username":"bakery-anne","password":"secret123"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	token := decodeMap(t, resp)["token"].(string)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(fiber.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	meResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, meResp.StatusCode)
	assert.Equal(t, "bakery-anne", decodeMap(t, meResp)["username"])

	req = httptest.NewRequest(fiber.MethodGet, "/api/users/me", nil)
	anonResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, anonResp.StatusCode)
}

func TestPing(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/ping", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", decodeMap(t, resp)["message"])
}
