package submission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loan-application-api/internal/domain/application"
	"loan-application-api/internal/domain/uow"
	"loan-application-api/internal/infrastructure/logging"

	"github.com/sirupsen/logrus"
)

const (
	OutcomeCommitted = "committed"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

// Observer receives pipeline measurements. Rows are reported only after
// commit.
type Observer interface {
	SubmissionFinished(outcome string, elapsed time.Duration)
	RowsInserted(table string, n int)
}

type nopObserver struct{}

func (nopObserver) SubmissionFinished(string, time.Duration) {}
func (nopObserver) RowsInserted(string, int)                 {}

type Usecase struct {
	uow uow.UnitOfWork
	log logrus.FieldLogger
	obs Observer
}

// NewUsecase: log and obs may be nil.
func NewUsecase(tx uow.UnitOfWork, log logrus.FieldLogger, obs Observer) *Usecase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if obs == nil {
		obs = nopObserver{}
	}
	return &Usecase{uow: tx, log: log, obs: obs}
}

// Submit persists doc in one transaction and returns the new application id.
// Either every planned row is committed or none is.
func (u *Usecase) Submit(ctx context.Context, doc Document) (*SubmitResult, error) {
	start := time.Now()
	log := logging.FromContext(ctx, u.log)

	if !doc.hasRequiredFields() {
		u.obs.SubmissionFinished(OutcomeRejected, time.Since(start))
		return nil, application.ErrMissingRequiredFields
	}
	if doc.CustomerDetails != nil && doc.CustomerDetails.Present() &&
		doc.BankDetails != nil && len(doc.BankDetails.Accounts) > firstAccountOnly {
		log.WithField("accounts", len(doc.BankDetails.Accounts)).
			Warn("bank details: only the first account is stored")
	}

	steps := plan(doc)
	var k keys
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		k = keys{}
		for _, s := range steps {
			if err := s.run(ctx, r, &k); err != nil {
				return fmt.Errorf("insert %s: %w", s, err)
			}
		}
		return nil
	})
	if err != nil {
		logFailure(log, err)
		u.obs.SubmissionFinished(OutcomeFailed, time.Since(start))
		return nil, err
	}

	for table, n := range rowsPerTable(steps) {
		u.obs.RowsInserted(table, n)
	}
	u.obs.SubmissionFinished(OutcomeCommitted, time.Since(start))
	log.WithFields(logrus.Fields{
		"application_id": k.applicationID,
		"rows":           len(steps),
	}).Info("application submitted")
	return &SubmitResult{ApplicationID: k.applicationID}, nil
}

func (d Document) hasRequiredFields() bool {
	na := d.NewApplication
	return na != nil && na.CustNo.Truthy() && na.CustName.Truthy() && na.AppNo.Truthy()
}

func logFailure(log logrus.FieldLogger, err error) {
	fields := logrus.Fields{}
	var se *application.StatementError
	if errors.As(err, &se) {
		fields["table"] = se.Table
		fields["sql"] = se.SQL
		if se.Code != 0 {
			fields["code"] = se.Code
			fields["sqlstate"] = se.SQLState
		}
	}
	msg := "transaction rolled back"
	if errors.Is(err, application.ErrStoreUnavailable) {
		msg = "store unavailable"
	}
	log.WithFields(fields).WithError(err).Error(msg)
}
