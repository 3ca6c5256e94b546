package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/stellarops/gsbooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	// The ISOCS login response carries no expiry claim; the token is
	// treated as valid for a fixed window from issuance.
	isocsTokenTTL = 23 * time.Hour

	isocsRequestTimeout = 30 * time.Second
	isocsDateFormat     = "2006-01-02"
)

// IsocsClient talks to the ISOCS-GSaaS API operated by Dhruva Space.
type IsocsClient struct {
	baseURL    string
	email      string
	password   string
	httpClient *http.Client
	log        logger.Logger

	// mu serializes the check-and-refresh of the session so concurrent
	// callers observing an expired token trigger exactly one login.
	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewIsocsClient(baseURL, email, password string, log logger.Logger) *IsocsClient {
	return &IsocsClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		email:      email,
		password:   password,
		httpClient: &http.Client{Timeout: isocsRequestTimeout},
		log:        log,
	}
}

func (c *IsocsClient) ProviderType() string {
	return "dhruva"
}

func (c *IsocsClient) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connectLocked(ctx)
}

func (c *IsocsClient) connectLocked(ctx context.Context) error {
	url := c.baseURL + "/userservice/dev/api/v1/user/login"

	body, err := json.Marshal(map[string]string{
		"sm_email":    c.email,
		"sm_password": c.password,
	})
	if err != nil {
		return fmt.Errorf("marshal login body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: login: %v", domain.ErrProviderRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: login: %d - %s", domain.ErrProviderRequest, resp.StatusCode, raw)
	}

	var loginResp struct {
		AccessToken string `json:"accessToken"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return fmt.Errorf("%w: decode login response: %v", domain.ErrProviderRequest, err)
	}

	c.accessToken = loginResp.AccessToken
	c.tokenExpiry = time.Now().Add(isocsTokenTTL)

	c.log.Info("ISOCS authenticated",
		logger.String("email", c.email),
		logger.Duration("token_ttl", isocsTokenTTL),
	)

	return nil
}

// ensureAuthenticated lazily refreshes the session: if no token is held or
// the expiry has passed, exactly one login round trip happens before any
// waiter proceeds.
func (c *IsocsClient) ensureAuthenticated(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken == "" || !time.Now().Before(c.tokenExpiry) {
		if err := c.connectLocked(ctx); err != nil {
			return "", err
		}
	}

	return c.accessToken, nil
}

func (c *IsocsClient) get(ctx context.Context, url string, out any) error {
	token, err := c.ensureAuthenticated(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrProviderRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %d - %s", domain.ErrProviderRequest, resp.StatusCode, raw)
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrProviderRequest, err)
	}

	return nil
}

func (c *IsocsClient) post(ctx context.Context, url string, body, out any) (int, error) {
	token, err := c.ensureAuthenticated(ctx)
	if err != nil {
		return 0, err
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrProviderRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, fmt.Errorf("%w: %d - %s", domain.ErrProviderRequest, resp.StatusCode, raw)
	}

	if out != nil {
		if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: decode response: %v", domain.ErrProviderRequest, err)
		}
	}

	return resp.StatusCode, nil
}

func (c *IsocsClient) ListSatellites(ctx context.Context) ([]domain.ProviderSatellite, error) {
	url := c.baseURL + "/centralsatellite/dev/portal/api/v1/central/gsaas/satellites"

	var resp struct {
		Data struct {
			Result []struct {
				SatelliteID   string `json:"satellite_id"`
				SatelliteName string `json:"satellite_name"`
				NoradID       *int   `json:"norad_id"`
			} `json:"result"`
		} `json:"data"`
	}
	if err := c.get(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("list satellites: %w", err)
	}

	satellites := make([]domain.ProviderSatellite, 0, len(resp.Data.Result))
	for _, sat := range resp.Data.Result {
		s := domain.ProviderSatellite{
			ID:   sat.SatelliteID,
			Name: sat.SatelliteName,
		}
		if sat.NoradID != nil {
			s.NoradID = strconv.Itoa(*sat.NoradID)
		}
		satellites = append(satellites, s)
	}

	c.log.Debug("ISOCS satellites listed", logger.Int("count", len(satellites)))
	return satellites, nil
}

func (c *IsocsClient) ListGroundStations(ctx context.Context) ([]domain.ProviderGroundStation, error) {
	url := c.baseURL + "/centralgroundstation/dev/portal/api/v1/central/gsaas/groundstations"

	var resp struct {
		Data []struct {
			GsID              string `json:"gs_id"`
			GroundStationName string `json:"ground_station_name"`
			City              string `json:"city"`
			StateName         string `json:"state_name"`
			CountryName       string `json:"country_name"`
			Latitude          string `json:"latitude"`
			Longitude         string `json:"longitude"`
		} `json:"data"`
	}
	if err := c.get(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("list ground stations: %w", err)
	}

	stations := make([]domain.ProviderGroundStation, 0, len(resp.Data))
	for _, gs := range resp.Data {
		stations = append(stations, domain.ProviderGroundStation{
			ID:        gs.GsID,
			Name:      gs.GroundStationName,
			City:      gs.City,
			State:     gs.StateName,
			Country:   gs.CountryName,
			Latitude:  parseFloat(gs.Latitude),
			Longitude: parseFloat(gs.Longitude),
		})
	}

	c.log.Debug("ISOCS ground stations listed", logger.Int("count", len(stations)))
	return stations, nil
}

func (c *IsocsClient) ListActivityScopes(ctx context.Context, satelliteID string) ([]domain.ProviderActivityScope, error) {
	url := c.baseURL + "/centralgroundstation/dev/portal/api/v1/central/gsaas/activityscopes/" + satelliteID

	var resp struct {
		Data []struct {
			GsabracID             string `json:"gsabrac_id"`
			SpbasID               string `json:"spbas_id"`
			SatelliteID           string `json:"satellite_id"`
			ActivityScope         string `json:"activity_scope"`
			TaskName              string `json:"task_name"`
			CommunicationBandName string `json:"communication_band_name"`
		} `json:"data"`
	}
	if err := c.get(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("list activity scopes: %w", err)
	}

	scopes := make([]domain.ProviderActivityScope, 0, len(resp.Data))
	for _, scope := range resp.Data {
		scopes = append(scopes, domain.ProviderActivityScope{
			GsabracID:         scope.GsabracID,
			SpbasID:           scope.SpbasID,
			SatelliteID:       scope.SatelliteID,
			ActivityScope:     scope.ActivityScope,
			TaskName:          scope.TaskName,
			CommunicationBand: scope.CommunicationBandName,
		})
	}

	c.log.Debug("ISOCS activity scopes listed",
		logger.String("satellite_id", satelliteID),
		logger.Int("count", len(scopes)),
	)
	return scopes, nil
}

func (c *IsocsClient) ListContacts(ctx context.Context, gsID, satelliteID, spbasID string, startDate, endDate time.Time) ([]domain.ProviderContact, error) {
	url := fmt.Sprintf("%s/centralgroundstation/dev/portal/api/v1/central/visibility/%s/%s/%s?start=%s&end=%s",
		c.baseURL, gsID, satelliteID, spbasID,
		startDate.Format(isocsDateFormat), endDate.Format(isocsDateFormat))

	var resp struct {
		Data []struct {
			GsVisibilityID    string `json:"gs_visibility_id"`
			GsID              string `json:"gs_id"`
			GroundStationName string `json:"ground_station_name"`
			SatelliteID       string `json:"satellite_id"`
			PassStart         string `json:"pass_start"`
			PassEnd           string `json:"pass_end"`
			MaxelElevation    string `json:"maxel_elevation"`
			IsActiveStatus    string `json:"is_active_status"`
		} `json:"data"`
	}
	if err := c.get(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	// The upstream feed repeats visibility ids; keep the first occurrence
	// in arrival order.
	seen := make(map[string]struct{}, len(resp.Data))
	contacts := make([]domain.ProviderContact, 0, len(resp.Data))
	for _, entry := range resp.Data {
		if _, ok := seen[entry.GsVisibilityID]; ok {
			continue
		}
		seen[entry.GsVisibilityID] = struct{}{}

		contact := domain.ProviderContact{
			VisibilityID:      entry.GsVisibilityID,
			GsID:              entry.GsID,
			GroundStationName: entry.GroundStationName,
			SatelliteID:       entry.SatelliteID,
			MaxElevation:      parseFloat(entry.MaxelElevation),
			Status:            entry.IsActiveStatus,
		}
		contact.PassStart = parseInstant(entry.PassStart)
		contact.PassEnd = parseInstant(entry.PassEnd)
		if contact.PassStart != nil && contact.PassEnd != nil {
			contact.DurationSeconds = int(contact.PassEnd.Sub(*contact.PassStart).Seconds())
		}

		contacts = append(contacts, contact)
	}

	c.log.Debug("ISOCS contacts listed",
		logger.String("gs_id", gsID),
		logger.String("satellite_id", satelliteID),
		logger.Int("count", len(contacts)),
	)
	return contacts, nil
}

type isocsReservationPayload struct {
	SatellitePassBookingID string `json:"satellite_pass_booking_id"`
	GsID                   string `json:"gs_id"`
	SatelliteID            string `json:"satellite_id"`
	GsVisibilityID         string `json:"gs_visibility_id"`
	GroundStationName      string `json:"ground_station_name"`
	GsapName               string `json:"gsap_name"`
	NoradID                int    `json:"norad_id"`
	StartDateTime          string `json:"start_date_time"`
	EndDateTime            string `json:"end_date_time"`
	BookingStartDateTime   string `json:"booking_start_date_time"`
	BookingEndDateTime     string `json:"booking_end_date_time"`
	RecordingStartDateTime string `json:"recording_start_date_time"`
	RecordingEndDateTime   string `json:"recording_end_date_time"`
	MaxelElevation         string `json:"maxel_elevation"`
	ActivityScope          string `json:"activity_scope"`
	SpbasID                string `json:"spbas_id"`
	GsaID                  string `json:"gsa_id"`
	GsapID                 string `json:"gsap_id"`
	OrgID                  string `json:"org_id"`
	IsActiveStatus         string `json:"is_active_status"`
	CreatedDateTime        string `json:"created_date_time"`
	UpdatedDateTime        string `json:"updated_date_time"`
}

func (p *isocsReservationPayload) toReservation() *domain.ProviderReservation {
	res := &domain.ProviderReservation{
		BookingID:         p.SatellitePassBookingID,
		GsID:              p.GsID,
		SatelliteID:       p.SatelliteID,
		VisibilityID:      p.GsVisibilityID,
		GroundStationName: p.GroundStationName,
		GsapName:          p.GsapName,
		NoradID:           p.NoradID,
		MaxElevation:      parseFloat(p.MaxelElevation),
		ActivityScope:     p.ActivityScope,
		SpbasID:           p.SpbasID,
		GsaID:             p.GsaID,
		GsapID:            p.GsapID,
		OrgID:             p.OrgID,
		Status:            p.IsActiveStatus,
	}
	res.StartDateTime = parseInstant(p.StartDateTime)
	res.EndDateTime = parseInstant(p.EndDateTime)
	res.RecordingStartTime = parseInstant(p.RecordingStartDateTime)
	res.RecordingEndTime = parseInstant(p.RecordingEndDateTime)
	res.CreatedDateTime = parseInstant(p.CreatedDateTime)
	res.UpdatedDateTime = parseInstant(p.UpdatedDateTime)
	if p.BookingStartDateTime != "" {
		res.BookingStartEpochMs, _ = strconv.ParseInt(p.BookingStartDateTime, 10, 64)
	}
	if p.BookingEndDateTime != "" {
		res.BookingEndEpochMs, _ = strconv.ParseInt(p.BookingEndDateTime, 10, 64)
	}
	return res
}

// ReserveContact requests a binding reservation. A non-success provider
// response fails the call; there is no retry at this layer.
func (c *IsocsClient) ReserveContact(ctx context.Context, gsID, satelliteID, visibilityID, gsabracID string) (*domain.ProviderReservation, error) {
	url := c.baseURL + "/centralgroundstation/dev/portal/api/v1/central/bookings"

	body := map[string]string{
		"gs_id":            gsID,
		"satellite_id":     satelliteID,
		"gs_visibility_id": visibilityID,
		"gsabrac_id":       gsabracID,
	}

	var resp struct {
		Data *isocsReservationPayload `json:"data"`
	}
	if _, err := c.post(ctx, url, body, &resp); err != nil {
		return nil, fmt.Errorf("reserve contact: %w", err)
	}

	reservation := &domain.ProviderReservation{}
	if resp.Data != nil {
		reservation = resp.Data.toReservation()
	}
	reservation.Status = "booking_received"

	c.log.Info("ISOCS contact reserved",
		logger.String("provider_booking_id", reservation.BookingID),
		logger.String("gs_id", gsID),
		logger.String("visibility_id", visibilityID),
	)
	return reservation, nil
}

// CancelReservation is best effort: a failed cancellation is reported as
// false, never raised.
func (c *IsocsClient) CancelReservation(ctx context.Context, providerBookingID string) (bool, error) {
	url := c.baseURL + "/centralgroundstation/dev/portal/api/v1/central/bookings/cancel"

	body := map[string]string{
		"satellite_pass_booking_id": providerBookingID,
	}

	status, err := c.post(ctx, url, body, nil)
	if err != nil {
		if status != 0 {
			c.log.Warn("ISOCS cancellation refused",
				logger.String("provider_booking_id", providerBookingID),
				logger.Int("status", status),
			)
			return false, nil
		}
		return false, fmt.Errorf("cancel reservation: %w", err)
	}

	c.log.Info("ISOCS reservation cancelled",
		logger.String("provider_booking_id", providerBookingID),
	)
	return true, nil
}

func (c *IsocsClient) ListBookings(ctx context.Context) ([]domain.ProviderReservation, error) {
	url := c.baseURL + "/centralgroundstation/dev/portal/api/v1/central/gsaas/bookings"

	var resp struct {
		Data struct {
			Result []isocsReservationPayload `json:"result"`
		} `json:"data"`
	}
	if err := c.get(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("list provider bookings: %w", err)
	}

	bookings := make([]domain.ProviderReservation, 0, len(resp.Data.Result))
	for i := range resp.Data.Result {
		bookings = append(bookings, *resp.Data.Result[i].toReservation())
	}

	c.log.Debug("ISOCS bookings listed", logger.Int("count", len(bookings)))
	return bookings, nil
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInstant(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
