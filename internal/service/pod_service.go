package service

import (
	"time"

	"github.com/ricirt/k8s-lab-demo/internal/domain"
)

// PodService answers questions about the running instance. The environment
// and the clock are injected so that every value is computed at request
// time and tests can pin both.
type PodService struct {
	getenv    func(string) string
	now       func() time.Time
	service   string
	namespace string
}

// NewPodService builds a PodService. getenv is normally os.Getenv and now is
// normally time.Now.
func NewPodService(getenv func(string) string, now func() time.Time, serviceName, namespace string) *PodService {
	return &PodService{
		getenv:    getenv,
		now:       now,
		service:   serviceName,
		namespace: namespace,
	}
}

// Hostname returns HOSTNAME as currently set, or "unknown".
func (s *PodService) Hostname() string {
	if h := s.getenv("HOSTNAME"); h != "" {
		return h
	}
	return domain.UnknownPod
}

func (s *PodService) Info() domain.Info {
	return domain.Info{
		App:       domain.AppName,
		Version:   domain.Version,
		Pod:       s.Hostname(),
		Timestamp: domain.FormatTimestamp(s.now()),
	}
}

func (s *PodService) Page() domain.Page {
	return domain.Page{
		Pod:       s.Hostname(),
		Service:   s.service,
		Namespace: s.namespace,
		Time:      domain.FormatTimestamp(s.now()),
	}
}
