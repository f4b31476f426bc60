// cmd/jamf-locator/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mdmtools/jamf-locator/config"
	"github.com/mdmtools/jamf-locator/httpclient"
	"github.com/mdmtools/jamf-locator/jamfpro"
	"github.com/mdmtools/jamf-locator/response"
	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		building   = flag.String("building", "", "building name to submit")
		department = flag.String("department", "", "department name to submit")
		room       = flag.String("room", "", "room to submit")
		username   = flag.String("username", "", "username to submit")
		realName   = flag.String("real-name", "", "real name to submit")
		email      = flag.String("email", "", "email address to submit")
		assetTag   = flag.String("asset-tag", "", "asset tag to submit")
		submit     = flag.Bool("submit", false, "submit the update; without it only the current state is printed")
	)
	flag.Parse()

	if err := run(*building, *department, *room, *username, *realName, *email, *assetTag, *submit); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

func run(building, department, room, username, realName, email, assetTag string, submit bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.DeviceID == "" {
		return &response.InvalidConfigError{Field: "JAMF_DEVICE_ID", Reason: "missing"}
	}

	client, err := httpclient.BuildClient(cfg.ClientConfig())
	if err != nil {
		return err
	}
	service := jamfpro.NewService(client, cfg.EASettings())

	ctx := context.Background()

	// The three reads are independent and interleave freely; prefill never
	// blocks the lists and vice versa.
	var (
		buildings   []jamfpro.NamedResource
		departments []jamfpro.NamedResource
		snapshot    *jamfpro.LocationSnapshot
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		buildings, err = service.ListBuildings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		departments, err = service.ListDepartments(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot, err = service.GetSnapshot(gctx, cfg.DeviceID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	printState(cfg.DeviceID, buildings, departments, snapshot)

	if !submit {
		return nil
	}

	if building != "" {
		if err := service.ValidateBuildingName(ctx, building); err != nil {
			return err
		}
	}
	if department != "" {
		if err := service.ValidateDepartmentName(ctx, department); err != nil {
			return err
		}
	}

	payload := buildPayload(building, department, room, username, realName, email, assetTag, buildings, departments)
	if err := service.Update(ctx, cfg.DeviceID, payload, true); err != nil {
		return err
	}

	fmt.Println("update submitted")
	return nil
}

// buildPayload assembles the update from the provided flags, leaving unset
// fields nil so the server does not touch them. Building and department names
// resolve to ids for the Pro API while the names themselves ride along for
// the Classic API.
func buildPayload(building, department, room, username, realName, email, assetTag string, buildings, departments []jamfpro.NamedResource) jamfpro.UpdatePayload {
	payload := jamfpro.UpdatePayload{
		AssetTag: optional(assetTag),
	}

	loc := &jamfpro.LocationUpdate{
		Username:       optional(username),
		RealName:       optional(realName),
		EmailAddress:   optional(email),
		Room:           optional(room),
		BuildingName:   optional(building),
		DepartmentName: optional(department),
	}
	if building != "" {
		loc.BuildingID = resolveID(building, buildings)
	}
	if department != "" {
		loc.DepartmentID = resolveID(department, departments)
	}

	if loc.Username != nil || loc.RealName != nil || loc.EmailAddress != nil ||
		loc.Room != nil || loc.BuildingName != nil || loc.DepartmentName != nil {
		payload.Location = loc
	}
	return payload
}

func resolveID(name string, list []jamfpro.NamedResource) *string {
	for _, r := range list {
		if r.Name == name && r.ID != "" {
			id := r.ID
			return &id
		}
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func printState(deviceID string, buildings, departments []jamfpro.NamedResource, snapshot *jamfpro.LocationSnapshot) {
	fmt.Printf("device %s\n", deviceID)
	fmt.Printf("  username:   %s\n", display(snapshot.Username))
	fmt.Printf("  real name:  %s\n", display(snapshot.RealName))
	fmt.Printf("  email:      %s\n", display(snapshot.Email))
	fmt.Printf("  room:       %s\n", display(snapshot.Room))
	fmt.Printf("  asset tag:  %s\n", display(snapshot.AssetTag))
	fmt.Printf("  building:   %s\n", display(snapshot.BuildingName))
	fmt.Printf("  department: %s\n", display(snapshot.DepartmentName))
	fmt.Printf("%d buildings, %d departments available\n", len(buildings), len(departments))
}

func display(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

// renderError maps the error taxonomy onto short, human-readable status
// messages. 403 responses already carry their privilege hint in the APIError.
func renderError(err error) string {
	var (
		invalidConfig *response.InvalidConfigError
		authErr       *response.AuthError
		apiErr        *response.APIError
		transportErr  *response.TransportError
		validationErr *response.ValidationError
	)
	switch {
	case errors.As(err, &invalidConfig):
		return "configuration error: " + invalidConfig.Error()
	case errors.As(err, &authErr):
		return "could not sign in to the server: " + authErr.Error()
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.As(err, &transportErr):
		return "could not reach the server: " + transportErr.Error()
	default:
		return err.Error()
	}
}
