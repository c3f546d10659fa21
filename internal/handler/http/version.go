// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/restful-users/internal/response"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetAppBuildInfo(r.Context())

	h.respond(w, r, response.New().Respond(map[string]any{"data": buildInfo.Map()}))
}
