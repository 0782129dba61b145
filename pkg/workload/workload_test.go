package workload

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vexxhost/hyper-platform/pkg/platform"
)

const basicValues = `
workloadType: BASIC_CONTAINER_LOAD
serviceName: payments-api
environment: dev
stripe: blue
serviceCatalog: payments
container:
  replicas: 2
  image:
    repository: ghcr.io/acme/payments-api
    tag: 1.4.2
  containerPorts:
    - portName: http
      portNumber: 8080
      protocol: tcp
      servicePort: 80
  livenessProbe:
    type: http
    path: /healthz
    port: 8080
    scheme: http
  resources:
    requests:
      cpu: 100m
      memory: 128Mi
    limits:
      cpu: "1"
      memory: 1Gi
  hpa:
    enabled: true
    targetCpu: 80
    minReplicas: 2
    maxReplicas: 5
ingress:
  enabled: true
  host: payments.dev.example.com
`

const rolloutValues = `
workloadType: BASIC_CONTAINER_ROLLOUT
serviceName: checkout
environment: syst
serviceCatalog: payments
container:
  replicas: 1
  image:
    repository: ghcr.io/acme/checkout
    tag: 2.0.0
  resources:
    requests: {cpu: 100m, memory: 64Mi}
    limits: {cpu: 200m, memory: 128Mi}
rollout:
  strategy:
    canary:
      maxSurge: 1
      maxUnavailable: 0
      steps:
        - setWeight: 20
        - pause: {}
        - analysis:
            templates:
              - templateName: success-rate
`

func TestKebabCaseToPlatformChart(t *testing.T) {
	assert.Equal(t, map[string]WorkloadType{
		"basic-container-load":    WorkloadTypeBasicContainerLoad,
		"basic-container-rollout": WorkloadTypeBasicContainerRollout,
		"stateful-container-load": WorkloadTypeStatefulContainerLoad,
	}, KebabCaseToPlatformChart)

	w, ok := ChartForDirectory("basic-container-load")
	require.True(t, ok)
	assert.Equal(t, "BASIC_CONTAINER_LOAD", string(w))

	_, ok = ChartForDirectory("ml-inference-load")
	assert.False(t, ok)
}

func TestParseWorkloadType(t *testing.T) {
	w, err := ParseWorkloadType("OLLAMA_INFERENCE_LOAD")
	require.NoError(t, err)
	assert.Equal(t, WorkloadTypeOllamaInferenceLoad, w)

	_, err = ParseWorkloadType("CRON_JOB")
	assert.ErrorIs(t, err, ErrUnknownWorkloadType)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    WorkloadType
		wantErr error
	}{
		{name: "basic load", data: basicValues, want: WorkloadTypeBasicContainerLoad},
		{name: "rollout", data: rolloutValues, want: WorkloadTypeBasicContainerRollout},
		{
			name: "json document",
			data: `{"workloadType": "OLLAMA_INFERENCE_LOAD", "serviceName": "llm", "gpu": {"count": 1}}`,
			want: WorkloadTypeOllamaInferenceLoad,
		},
		{name: "missing discriminant", data: "serviceName: foo\n", wantErr: ErrMissingWorkloadType},
		{name: "unknown discriminant", data: "workloadType: CRON_JOB\n", wantErr: ErrUnknownWorkloadType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := Decode([]byte(tt.data))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, schema.GetWorkloadType())
		})
	}
}

func TestDecodeRejectsFieldsOfOtherVariants(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "rollout section on basic load",
			data: basicValues + "rollout:\n  strategy:\n    canary:\n      steps: []\n",
		},
		{
			name: "stripe on rollout",
			data: rolloutValues + "stripe: blue\n",
		},
		{
			name: "hpa on ollama container",
			data: `{"workloadType": "OLLAMA_INFERENCE_LOAD", "container": {"hpa": {"enabled": true}}}`,
		},
		{
			name: "model on stateful load",
			data: `{"workloadType": "STATEFUL_CONTAINER_LOAD", "model": {"id": "x"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestDecodedBasicLoad(t *testing.T) {
	schema, err := Decode([]byte(basicValues))
	require.NoError(t, err)

	basic, ok := schema.(*BasicContainerLoad)
	require.True(t, ok)
	assert.True(t, IsBasicContainerLoadVariant(basic))
	assert.Equal(t, Stripe("blue"), basic.Stripe)
	assert.Equal(t, platform.EnvironmentDev, basic.Environment)
	assert.Equal(t, int32(2), basic.Container.Replicas)
	assert.Equal(t, "1.4.2", basic.Container.Image.Tag)
	require.NotNil(t, basic.Container.HPA)
	assert.Equal(t, int32(80), basic.Container.HPA.TargetCPU)
	require.NotNil(t, basic.Ingress)
	assert.Equal(t, "payments.dev.example.com", basic.Ingress.Host)

	assert.Empty(t, basic.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		fields []string
	}{
		{
			name: "valid rollout",
			data: rolloutValues,
		},
		{
			name: "invalid environment and quantity",
			data: `{
				"workloadType": "STATEFUL_CONTAINER_LOAD",
				"serviceName": "db",
				"environment": "staging",
				"serviceCatalog": "payments",
				"container": {
					"replicas": 1,
					"image": {"repository": "postgres", "tag": "16"},
					"resources": {"requests": {"memory": "lots"}, "limits": {}},
					"storage": {"size": "10Gi"}
				}
			}`,
			fields: []string{"environment", "container.resources.requests", "container.storage.mountPath"},
		},
		{
			name: "ml inference without gpu",
			data: `{
				"workloadType": "ML_INFERENCE_LOAD",
				"serviceName": "tgi",
				"environment": "uat",
				"serviceCatalog": "ml",
				"model": {"id": "mistral", "revision": "main"},
				"inference": {"maxInputLength": 4096, "maxTotalTokens": 2048},
				"gpu": {"count": 0},
				"container": {
					"replicas": 1,
					"image": {"repository": "tgi", "tag": "2.0"},
					"resources": {"requests": {}, "limits": {}}
				}
			}`,
			fields: []string{"inference.maxInputLength", "gpu.count"},
		},
		{
			name: "broken canary step",
			data: rolloutValues + "        - setWeight: 120\n        - {}\n",
			fields: []string{
				"rollout.strategy.canary.steps[3].setWeight",
				"rollout.strategy.canary.steps[4]",
			},
		},
		{
			name: "missing stripe and bad probe",
			data: `{
				"workloadType": "BASIC_CONTAINER_LOAD",
				"serviceName": "api",
				"environment": "prod",
				"serviceCatalog": "payments",
				"container": {
					"replicas": 1,
					"image": {"repository": "api", "tag": "1"},
					"readinessProbe": {"type": "grpc"},
					"resources": {"requests": {}, "limits": {}}
				}
			}`,
			fields: []string{"stripe", "container.readinessProbe.type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := Decode([]byte(tt.data))
			require.NoError(t, err)

			var got []string
			for _, e := range schema.Validate() {
				got = append(got, e.Field)
			}
			assert.ElementsMatch(t, tt.fields, got)
		})
	}
}

func TestValuesJSON(t *testing.T) {
	type payload struct {
		CatalogName string `json:"catalogName"`
		Values      Values `json:"values"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{
		"catalogName": "payments",
		"values": {"workloadType": "OLLAMA_INFERENCE_LOAD", "serviceName": "llm", "gpu": {"count": 2}}
	}`), &p))

	ollama, ok := p.Values.Schema.(*OllamaInferenceLoad)
	require.True(t, ok)
	assert.Equal(t, int32(2), ollama.GPU.Count)
	assert.False(t, IsBasicContainerLoadVariant(ollama))

	data, err := json.Marshal(p.Values)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"workloadType":"OLLAMA_INFERENCE_LOAD"`)

	var empty payload
	require.NoError(t, json.Unmarshal([]byte(`{"values": null}`), &empty))
	assert.Nil(t, empty.Values.Schema)
}

func TestBasicValuesFile(t *testing.T) {
	values := BasicValuesFile{Stripe: "green"}.GenerateValuesFile(platform.ValuesFileVariables{
		ServiceName:        "orders",
		Environment:        "dev",
		ContainerPath:      "ghcr.io/acme/orders",
		ServiceCatalogName: "payments",
		Namespace:          "payments",
	})

	assert.Equal(t, WorkloadTypeBasicContainerLoad, values.WorkloadType)
	assert.Equal(t, "ghcr.io/acme/orders", values.Container.Image.Repository)
	assert.Empty(t, values.Validate())
}

func TestRegistry(t *testing.T) {
	registry := DefaultRegistry()
	assert.Len(t, registry.Types(), len(WorkloadTypes))

	err := registry.Register(func() Schema { return &BasicContainerLoad{} })
	assert.Error(t, err)
}
