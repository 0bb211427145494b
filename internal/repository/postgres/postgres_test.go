package postgres_test

import (
	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
	"github.com/SANTHOSHG-WEB/disaster/internal/repository/postgres"
)

// Verify the repository types satisfy their domain interfaces at
// compile time. Behavior is covered by the in-memory implementations;
// these queries run against a live database.
var (
	_ domain.Database                    = (*postgres.DB)(nil)
	_ domain.UserRepository              = (*postgres.UserRepository)(nil)
	_ domain.ProgressStore               = (*postgres.ProgressStore)(nil)
	_ domain.EmergencyContactRepository  = (*postgres.EmergencyContactRepository)(nil)
	_ domain.ShelterRepository           = (*postgres.ShelterRepository)(nil)
	_ domain.CertificateRepository       = (*postgres.CertificateRepository)(nil)
)
