package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type StepReq struct {
	Step string `json:"step" example:"textured-quad"`
}

// handleStep selects a step by name, either from the path or from a json
// body.
//
// @Summary	Switch to a tutorial step
// @Router		/api/step/{step} [post]
// @Router		/api/step [post]
// @Tags		step
// @Param		step	path	string	true	"Name of the step to show"
// @Param		stepReq	body	StepReq	true	"Step to show"
// @Accept		json
// @Success	200
// @Failure	400	{string}	string	"Could not decode json request"
// @Failure	404	{string}	string	"The step does not exist"
func (a *Api) handleStep(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost && req.Method != http.MethodPut {
		http.Error(w, "Invalid method, only POST and PUT supported", http.StatusMethodNotAllowed)
		return
	}

	var stepReq StepReq
	if req.PathValue("step") == "" {
		err := json.NewDecoder(req.Body).Decode(&stepReq)
		if err != nil {
			http.Error(w, fmt.Sprintf("could not decode json request: %s", err), http.StatusBadRequest)
			return
		}
	} else {
		stepReq.Step = req.PathValue("step")
	}

	err := a.tutorial.SetStep(stepReq.Step)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not set step: %s", err), http.StatusNotFound)
		return
	}
	a.writeOk(w)
}
