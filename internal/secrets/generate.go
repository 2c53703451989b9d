package secrets

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"
)

// DefaultNamespace is the namespace the gateway's AuthPolicy reads
// auth secrets from.
const DefaultNamespace = "llm"

const (
	authSecretLabel = "kuadrant.io/auth-secret"
	appLabel        = "app"
	appName         = "llm-gateway"

	groupsAnnotation      = "kuadrant.io/groups"
	userIDAnnotation      = "secret.kuadrant.io/user-id"
	descriptionAnnotation = "description"
)

// NewSecret builds the Kubernetes Secret for one benchmark user.
func NewSecret(record UserRecord, namespace, description string) *corev1.Secret {
	return &corev1.Secret{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Secret",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      record.SecretName(),
			Namespace: namespace,
			Labels: map[string]string{
				authSecretLabel: "true",
				appLabel:        appName,
			},
			Annotations: map[string]string{
				groupsAnnotation:      record.Tier,
				userIDAnnotation:      record.UserID,
				descriptionAnnotation: description,
			},
		},
		StringData: map[string]string{
			"api_key": record.APIKey,
		},
		Type: corev1.SecretTypeOpaque,
	}
}

// RenderSecret marshals a Secret to YAML prefixed with a document
// separator.
func RenderSecret(secret *corev1.Secret) (string, error) {
	yamlBytes, err := yaml.Marshal(secret)
	if err != nil {
		return "", fmt.Errorf("failed to marshal Secret to YAML: %w", err)
	}

	return "---\n" + string(yamlBytes), nil
}

// Generate renders one Secret document per user for every tier in
// order: each tier contributes its users with ascending index 1..Count.
func Generate(tiers []Tier, namespace string) ([]string, error) {
	total := 0
	for _, tier := range tiers {
		total += tier.Count
	}

	documents := make([]string, 0, total)
	for _, tier := range tiers {
		for i := 1; i <= tier.Count; i++ {
			record := NewUserRecord(tier.Name, i)
			doc, err := RenderSecret(NewSecret(record, namespace, tier.Description))
			if err != nil {
				return nil, fmt.Errorf("failed to render secret for %s: %w", record.UserID, err)
			}
			documents = append(documents, doc)
		}
	}

	return documents, nil
}
