// seed_org provisions an organization and a membership out of band. There is
// no HTTP endpoint for either, so operators run this after a user registers.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"taskboard/internal/db"
	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

func main() {
	email := flag.String("email", "", "email of an existing user to enroll")
	orgName := flag.String("org", "", "organization name to create")
	orgID := flag.Int64("org-id", 0, "existing organization id (skips creation)")
	role := flag.String("role", "admin", "membership role: admin or member")
	flag.Parse()

	if *email == "" {
		log.Fatal("-email is required")
	}
	if *orgName == "" && *orgID == 0 {
		log.Fatal("one of -org or -org-id is required")
	}
	if *role != string(domain.RoleAdmin) && *role != string(domain.RoleMember) {
		log.Fatalf("invalid role %q", *role)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()
	ctx := context.Background()

	users := repository.NewUserRepository(pool)
	orgs := repository.NewOrgRepository(pool)
	memberships := repository.NewMembershipRepository(pool)

	user, err := users.FindByEmail(ctx, *email)
	if err != nil {
		log.Fatalf("user lookup failed: %v", err)
	}
	if user == nil {
		log.Fatalf("no user with email %s", *email)
	}

	id := *orgID
	if id == 0 {
		org := &domain.Organization{Name: *orgName}
		if err := orgs.Create(ctx, org); err != nil {
			log.Fatalf("create organization failed: %v", err)
		}
		id = org.ID
		log.Printf("organization created id=%d name=%s", org.ID, org.Name)
	} else {
		org, err := orgs.FindByID(ctx, id)
		if err != nil {
			log.Fatalf("organization lookup failed: %v", err)
		}
		if org == nil {
			log.Fatalf("no organization with id %d", id)
		}
	}

	m := &domain.Membership{
		UserID: user.ID,
		OrgID:  id,
		Role:   domain.MembershipRole(*role),
	}
	if err := memberships.Create(ctx, m); err != nil {
		log.Fatalf("create membership failed: %v", err)
	}
	log.Printf("membership created user=%s org=%d role=%s", user.ID, id, m.Role)
}
