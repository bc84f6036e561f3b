package swagger_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"office-management/internal/transport/swagger"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSwagger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Swagger Suite")
}

var _ = Describe("OpenAPI document", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("../../../api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("is a valid OpenAPI 3 document", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("documents every route the router serves", func() {
		for _, route := range []struct{ method, path string }{
			{http.MethodPost, "/admin/login"},
			{http.MethodPost, "/admin/register"},
			{http.MethodPut, "/admin/update"},
			{http.MethodDelete, "/admin/delete"},
			{http.MethodGet, "/admin/dashboard"},
			{http.MethodPost, "/employee/login"},
			{http.MethodPost, "/employee/register"},
			{http.MethodPut, "/employee/update"},
			{http.MethodDelete, "/employee/delete"},
			{http.MethodGet, "/employee/info"},
			{http.MethodGet, "/employee/all"},
			{http.MethodPost, "/attendance/mark"},
			{http.MethodPut, "/attendance/update"},
			{http.MethodPost, "/leave/new"},
			{http.MethodPut, "/leave/update"},
			{http.MethodDelete, "/leave/delete/{leaveId}"},
			{http.MethodPost, "/payroll/new"},
			{http.MethodPut, "/payroll/update"},
			{http.MethodDelete, "/payroll/delete/{payrollId}"},
			{http.MethodPost, "/task/new"},
			{http.MethodPut, "/task/update"},
			{http.MethodDelete, "/task/delete/{taskId}"},
			{http.MethodPost, "/notification/new"},
			{http.MethodPut, "/notification/update"},
			{http.MethodDelete, "/notification/delete/{notificationId}"},
		} {
			item := doc.Paths.Find(route.path)
			Expect(item).NotTo(BeNil(), "missing path %s", route.path)
			Expect(item.GetOperation(route.method)).NotTo(BeNil(),
				"missing %s %s", route.method, route.path)
		}
	})

	It("declares bearer authentication", func() {
		scheme := doc.Components.SecuritySchemes["bearerAuth"]
		Expect(scheme).NotTo(BeNil())
		Expect(scheme.Value.Type).To(Equal("http"))
		Expect(scheme.Value.Scheme).To(Equal("bearer"))
	})
})

var _ = Describe("Swagger handler", func() {
	It("serves the UI", func() {
		handler := swagger.Handler()
		request := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)
		Expect(recorder.Code).To(Equal(http.StatusOK))
	})
})
